package dungeon

// RoomType classifies the role a room plays within its level.
type RoomType string

const (
	RoomEntry     RoomType = "entry"
	RoomExit      RoomType = "exit"
	RoomStairwell RoomType = "stairwell"
	RoomSpecial   RoomType = "special"
	RoomChamber   RoomType = "chamber"
)

// DoorType classifies how a door behaves.
type DoorType string

const (
	DoorNormal DoorType = "normal"
	DoorLocked DoorType = "locked"
	DoorSecret DoorType = "secret"
)

// DoorState is the initial state a door is generated in.
type DoorState string

const (
	DoorStateOpen   DoorState = "open"
	DoorStateClosed DoorState = "closed"
	DoorStateLocked DoorState = "locked"
)

// FeatureKind classifies thematic points of interest placed in rooms.
type FeatureKind string

const (
	FeatureTrap      FeatureKind = "trap"
	FeatureTreasure  FeatureKind = "treasure"
	FeatureAltar     FeatureKind = "altar"
	FeatureLair      FeatureKind = "lair"
	FeatureEncounter FeatureKind = "encounter"
)

// Point is a grid coordinate. One cell represents a 5-foot square.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Feature is a point of interest attached to a room.
type Feature struct {
	Kind FeatureKind `json:"kind"`
	Icon string      `json:"icon"`
}

// Door sits at a grid cell where a corridor meets a room boundary.
type Door struct {
	ID    int       `json:"id"`
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Type  DoorType  `json:"type"`
	State DoorState `json:"state"`
}

// Room is an axis-aligned rectangle of cells placed on the level grid.
// Its rectangle, expanded by a one-cell buffer, never intersects another
// room on the same level.
type Room struct {
	ID          int       `json:"id"`
	Type        RoomType  `json:"type"`
	X           int       `json:"x"`
	Y           int       `json:"y"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Doors       []int     `json:"doors"`
	Connections []int     `json:"connections"`
	Features    []Feature `json:"features"`
	Description string    `json:"description"`
}

// center returns the room's center cell.
func (r Room) center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// contains reports whether the cell lies inside the room rectangle.
func (r Room) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// overlapsPadded reports whether the room, expanded by a one-cell buffer,
// intersects the given rectangle.
func (r Room) overlapsPadded(x, y, w, h int) bool {
	return r.X-1 < x+w && x < r.X+r.Width+1 && r.Y-1 < y+h && y < r.Y+r.Height+1
}

// Corridor is one carved connection between two rooms. The path is an
// ordered list of cells whose endpoints lie on the boundary of the two
// rooms it connects.
type Corridor struct {
	ID   int     `json:"id"`
	Path []Point `json:"path"`
}

// StairLink records the logical connection from a level's stairwell room to
// the entry room of the level below. No corridor is carved across levels.
type StairLink struct {
	FromRoomID int `json:"from_room_id"`
	ToLevel    int `json:"to_level"`
	ToRoomID   int `json:"to_room_id"`
}

// Level is one fully generated dungeon floor.
type Level struct {
	LevelIndex  int        `json:"level_index"`
	Name        string     `json:"name"`
	GridWidth   int        `json:"grid_width"`
	GridHeight  int        `json:"grid_height"`
	Rooms       []Room     `json:"rooms"`
	Corridors   []Corridor `json:"corridors"`
	Doors       []Door     `json:"doors"`
	StairsDown  *StairLink `json:"stairs_down,omitempty"`
	MapImageURL string     `json:"map_image_url,omitempty"`
}

// Identity describes the dungeon as a whole.
type Identity struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
}

// Structure holds the ordered list of generated levels.
type Structure struct {
	Levels []Level `json:"levels"`
}

// Detail is the sole output of the generation pipeline. It is handed to
// persistence and rendering collaborators unchanged.
type Detail struct {
	Identity  Identity  `json:"identity"`
	Structure Structure `json:"structure"`
}
