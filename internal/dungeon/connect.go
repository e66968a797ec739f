package dungeon

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/louisbranch/dungeonforge/internal/platform/errors"
)

// edge is an undirected connection between two room indices, a < b.
type edge struct {
	a      int
	b      int
	weight int
}

// buildCorridors connects every room on the level. Spanning-tree edges must
// all carve successfully; a blocked tree edge means the placement invariant
// was violated and surfaces as an internal-consistency fault. Loop edges are
// best-effort and the number dropped is reported to the caller.
func buildCorridors(g *grid, rooms []Room, p Params, rng *rand.Rand) ([]Corridor, int, error) {
	if len(rooms) < 2 {
		return nil, 0, nil
	}

	tree := spanningTree(rooms)

	var corridors []Corridor
	connect := func(e edge) bool {
		path, ok := carvePath(g, rooms, e.a, e.b)
		if !ok {
			return false
		}
		corridors = append(corridors, Corridor{ID: len(corridors), Path: path})
		addConnection(rooms, e.a, e.b)
		return true
	}

	for _, e := range tree {
		if !connect(e) {
			return nil, 0, errors.New(errors.CodeDungeonCorridorBlocked,
				fmt.Sprintf("spanning corridor between rooms %d and %d cannot be carved", e.a, e.b))
		}
	}

	dropped := 0
	for _, e := range selectLoopEdges(rooms, tree, p, rng) {
		if !connect(e) {
			dropped++
		}
	}

	return corridors, dropped, nil
}

// spanningTree computes a minimum spanning tree over room centers with
// Prim's algorithm. Distances are squared Euclidean so ties are exact;
// equal-weight candidates resolve to the lowest room indices, keeping the
// tree deterministic for a given room set.
func spanningTree(rooms []Room) []edge {
	n := len(rooms)
	if n < 2 {
		return nil
	}

	inTree := mapset.New[int]()
	inTree.Put(0)

	bestDist := make([]int, n)
	bestFrom := make([]int, n)
	for v := 1; v < n; v++ {
		bestDist[v] = roomDistance(rooms[0], rooms[v])
		bestFrom[v] = 0
	}

	edges := make([]edge, 0, n-1)
	for len(edges) < n-1 {
		pick := -1
		for v := 0; v < n; v++ {
			if inTree.Has(v) {
				continue
			}
			if pick == -1 || bestDist[v] < bestDist[pick] {
				pick = v
			}
		}

		edges = append(edges, newEdge(bestFrom[pick], pick, bestDist[pick]))
		inTree.Put(pick)

		for v := 0; v < n; v++ {
			if inTree.Has(v) {
				continue
			}
			d := roomDistance(rooms[pick], rooms[v])
			if d < bestDist[v] || (d == bestDist[v] && pick < bestFrom[v]) {
				bestDist[v] = d
				bestFrom[v] = pick
			}
		}
	}

	return edges
}

func newEdge(a, b, weight int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a: a, b: b, weight: weight}
}

func roomDistance(a, b Room) int {
	ca, cb := a.center(), b.center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y
	return dx*dx + dy*dy
}

// loopEdgeBudget bounds the extra non-tree edges added for alternate routes.
func loopEdgeBudget(n int, difficulty Difficulty, theme string) int {
	if n < 4 {
		return 0
	}
	var base int
	switch difficulty {
	case DifficultyEasy:
		base = n / 8
	case DifficultyHard:
		base = n / 5
	case DifficultyDeadly:
		base = n / 4
	default:
		base = n / 6
	}
	lower := strings.ToLower(theme)
	if strings.Contains(lower, "maze") || strings.Contains(lower, "labyrinth") || strings.Contains(lower, "warren") {
		base++
	}
	return base
}

// selectLoopEdges picks loop routes among the shortest non-tree edges.
// Sampling from a small pool keeps loops local instead of spanning the
// whole grid.
func selectLoopEdges(rooms []Room, tree []edge, p Params, rng *rand.Rand) []edge {
	budget := loopEdgeBudget(len(rooms), p.Difficulty, p.Theme)
	if budget == 0 {
		return nil
	}

	used := mapset.New[[2]int]()
	for _, e := range tree {
		used.Put([2]int{e.a, e.b})
	}

	var candidates []edge
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if used.Has([2]int{i, j}) {
				continue
			}
			candidates = append(candidates, edge{a: i, b: j, weight: roomDistance(rooms[i], rooms[j])})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight < candidates[j].weight
		}
		if candidates[i].a != candidates[j].a {
			return candidates[i].a < candidates[j].a
		}
		return candidates[i].b < candidates[j].b
	})

	pool := candidates
	if len(pool) > 3*budget {
		pool = pool[:3*budget]
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > budget {
		pool = pool[:budget]
	}
	return pool
}

// carvePath finds an orthogonal path between the centers of rooms a and b
// and writes it into the grid. Candidate paths bend at a single row or
// column; when the natural L-path crosses an unrelated room, the bend steps
// outward one cell at a time until a clear route appears. Returns false when
// every bend is blocked.
func carvePath(g *grid, rooms []Room, a, b int) ([]Point, bool) {
	src := rooms[a].center()
	dst := rooms[b].center()

	for _, m := range bendCandidates(src.Y, dst.Y, g.height) {
		if path, ok := trimPath(zPathRows(src, dst, m), rooms, a, b); ok {
			carve(g, path)
			return path, true
		}
	}
	for _, m := range bendCandidates(src.X, dst.X, g.width) {
		if path, ok := trimPath(zPathCols(src, dst, m), rooms, a, b); ok {
			carve(g, path)
			return path, true
		}
	}
	return nil, false
}

// bendCandidates orders every coordinate in [0, limit) by distance from the
// natural bend positions p and q.
func bendCandidates(p, q, limit int) []int {
	seen := make([]bool, limit)
	out := make([]int, 0, limit)
	add := func(v int) {
		if v >= 0 && v < limit && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	add(p)
	add(q)
	for d := 1; len(out) < limit; d++ {
		add(p - d)
		add(p + d)
		add(q - d)
		add(q + d)
	}
	return out
}

// zPathRows walks vertically to row m, across row m, then vertically to the
// destination. m equal to either endpoint row degenerates to an L-path.
func zPathRows(src, dst Point, m int) []Point {
	var pts []Point
	for _, y := range stepRange(src.Y, m) {
		pts = append(pts, Point{X: src.X, Y: y})
	}
	for _, x := range rest(stepRange(src.X, dst.X)) {
		pts = append(pts, Point{X: x, Y: m})
	}
	for _, y := range rest(stepRange(m, dst.Y)) {
		pts = append(pts, Point{X: dst.X, Y: y})
	}
	return pts
}

// zPathCols is the column-bend mirror of zPathRows.
func zPathCols(src, dst Point, m int) []Point {
	var pts []Point
	for _, x := range stepRange(src.X, m) {
		pts = append(pts, Point{X: x, Y: src.Y})
	}
	for _, y := range rest(stepRange(src.Y, dst.Y)) {
		pts = append(pts, Point{X: m, Y: y})
	}
	for _, x := range rest(stepRange(m, dst.X)) {
		pts = append(pts, Point{X: x, Y: dst.Y})
	}
	return pts
}

// stepRange returns every integer from a to b inclusive, in walk order.
func stepRange(a, b int) []int {
	step := 1
	if b < a {
		step = -1
	}
	out := make([]int, 0, (b-a)*step+1)
	for v := a; ; v += step {
		out = append(out, v)
		if v == b {
			break
		}
	}
	return out
}

func rest(vals []int) []int {
	if len(vals) == 0 {
		return nil
	}
	return vals[1:]
}

// trimPath validates a candidate against unrelated rooms and clips it to
// the boundary cells of the two endpoint rooms.
func trimPath(pts []Point, rooms []Room, a, b int) ([]Point, bool) {
	for _, pt := range pts {
		if idx := roomIndexAt(rooms, pt); idx >= 0 && idx != a && idx != b {
			return nil, false
		}
	}

	start := -1
	for i, pt := range pts {
		if rooms[a].contains(pt.X, pt.Y) {
			start = i
		}
	}
	if start == -1 {
		return nil, false
	}

	end := -1
	for i := start + 1; i < len(pts); i++ {
		if rooms[b].contains(pts[i].X, pts[i].Y) {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, false
	}

	return pts[start : end+1], true
}

func roomIndexAt(rooms []Room, pt Point) int {
	for i, r := range rooms {
		if r.contains(pt.X, pt.Y) {
			return i
		}
	}
	return -1
}

// carve writes corridor cells into the grid. Room cells at the path ends
// and cells shared with earlier corridors are left as they are.
func carve(g *grid, path []Point) {
	for _, pt := range path {
		if g.at(pt.X, pt.Y) == cellEmpty {
			g.set(pt.X, pt.Y, cellCorridor)
		}
	}
}

func addConnection(rooms []Room, a, b int) {
	if !containsInt(rooms[a].Connections, rooms[b].ID) {
		rooms[a].Connections = append(rooms[a].Connections, rooms[b].ID)
	}
	if !containsInt(rooms[b].Connections, rooms[a].ID) {
		rooms[b].Connections = append(rooms[b].Connections, rooms[a].ID)
	}
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
