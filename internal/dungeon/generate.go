package dungeon

import (
	"fmt"
	"math/rand"
)

// Report carries the non-fatal deviations of one generation run. Placement
// shortfalls and dropped loop edges degrade the result instead of failing
// it; the caller decides whether to keep or regenerate.
type Report struct {
	Levels []LevelReport `json:"levels"`
}

// LevelReport describes how one level's build went.
type LevelReport struct {
	LevelIndex       int `json:"level_index"`
	RoomTarget       int `json:"room_target"`
	RoomsPlaced      int `json:"rooms_placed"`
	LoopEdgesDropped int `json:"loop_edges_dropped"`
}

// Result pairs the generated dungeon with its build report.
type Result struct {
	Detail Detail `json:"detail"`
	Report Report `json:"report"`
}

// Generate runs the full pipeline: per-level room placement, corridor
// carving, door and feature placement, then cross-level stair linking.
// It fails only on invalid parameters or an internal consistency fault;
// sparse levels are returned as-is and noted in the report.
func Generate(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(p.Seed))

	levels := make([]Level, 0, p.NumLevels)
	reports := make([]LevelReport, 0, p.NumLevels)
	for i := 0; i < p.NumLevels; i++ {
		final := i == p.NumLevels-1
		level, report, err := generateLevel(i, p, final, rng)
		if err != nil {
			return Result{}, err
		}
		levels = append(levels, level)
		reports = append(reports, report)
	}

	linkLevels(levels)

	detail := Detail{
		Identity: Identity{
			Name:       dungeonName(p.Theme, rng),
			Type:       "dungeon",
			Theme:      p.Theme,
			Difficulty: p.Difficulty,
		},
		Structure: Structure{Levels: levels},
	}

	return Result{Detail: detail, Report: Report{Levels: reports}}, nil
}

// generateLevel builds one floor on its own scratch grid. The grid is
// discarded once doors are derived; only rooms, corridors, and doors
// survive into the level.
func generateLevel(index int, p Params, final bool, rng *rand.Rand) (Level, LevelReport, error) {
	g := newGrid(p.GridWidth, p.GridHeight)

	rooms := placeRooms(g, p, rng)
	corridors, dropped, err := buildCorridors(g, rooms, p, rng)
	if err != nil {
		return Level{}, LevelReport{}, err
	}
	doors := placeDoors(g, rooms, corridors, p.Difficulty, rng)
	assignRoles(rooms, final, p.Theme, rng)
	scatterFeatures(rooms, p.Theme, p.Difficulty, rng)
	describeRooms(rooms, rng)

	level := Level{
		LevelIndex: index,
		Name:       fmt.Sprintf("Depth %d", index+1),
		GridWidth:  p.GridWidth,
		GridHeight: p.GridHeight,
		Rooms:      rooms,
		Corridors:  corridors,
		Doors:      doors,
	}
	report := LevelReport{
		LevelIndex:       index,
		RoomTarget:       targetRoomCount(p),
		RoomsPlaced:      len(rooms),
		LoopEdgesDropped: dropped,
	}
	return level, report, nil
}

// linkLevels wires each stairwell room to the entry room of the level
// below. The link is logical metadata; nothing is carved across levels.
func linkLevels(levels []Level) {
	for i := 0; i < len(levels)-1; i++ {
		from := roomOfType(levels[i].Rooms, RoomStairwell)
		if from == -1 {
			// Degenerate single-room level: descend from the entry.
			from = roomOfType(levels[i].Rooms, RoomEntry)
		}
		to := roomOfType(levels[i+1].Rooms, RoomEntry)
		if from == -1 || to == -1 {
			continue
		}
		levels[i].StairsDown = &StairLink{
			FromRoomID: levels[i].Rooms[from].ID,
			ToLevel:    i + 1,
			ToRoomID:   levels[i+1].Rooms[to].ID,
		}
	}
}

func roomOfType(rooms []Room, t RoomType) int {
	for i := range rooms {
		if rooms[i].Type == t {
			return i
		}
	}
	return -1
}
