package dungeon

// cellKind tags one grid cell during generation. The grid is a scratch
// arena owned by a single level build; only rooms, corridors, and doors
// survive into the output.
type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellRoom
	cellCorridor
)

type grid struct {
	width  int
	height int
	cells  []cellKind
}

func newGrid(width, height int) *grid {
	return &grid{
		width:  width,
		height: height,
		cells:  make([]cellKind, width*height),
	}
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *grid) at(x, y int) cellKind {
	return g.cells[y*g.width+x]
}

func (g *grid) set(x, y int, kind cellKind) {
	g.cells[y*g.width+x] = kind
}

// markRoom writes the room rectangle into the grid.
func (g *grid) markRoom(r Room) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			g.set(x, y, cellRoom)
		}
	}
}
