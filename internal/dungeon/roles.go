package dungeon

import "math/rand"

// assignRoles types every room on a level. The room nearest the grid origin
// becomes the entry; the room most corridor hops away becomes the exit on
// the final level and the stairwell everywhere else. A theme-weighted subset
// of the rest becomes special rooms.
//
// A level with a single room keeps it as the entry; there is no distinct far
// room to promote.
func assignRoles(rooms []Room, finalLevel bool, theme string, rng *rand.Rand) (entry, far int) {
	if len(rooms) == 0 {
		return -1, -1
	}

	entry = nearestOrigin(rooms)
	rooms[entry].Type = RoomEntry
	if len(rooms) == 1 {
		return entry, entry
	}

	far = farthestByHops(rooms, entry)
	if finalLevel {
		rooms[far].Type = RoomExit
	} else {
		rooms[far].Type = RoomStairwell
	}

	chance := specialChance(theme)
	for i := range rooms {
		if rooms[i].Type != RoomChamber {
			continue
		}
		if rng.Float64() < chance {
			rooms[i].Type = RoomSpecial
		}
	}

	return entry, far
}

func nearestOrigin(rooms []Room) int {
	best := 0
	bestDist := originDistance(rooms[0])
	for i := 1; i < len(rooms); i++ {
		if d := originDistance(rooms[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func originDistance(r Room) int {
	c := r.center()
	return c.X*c.X + c.Y*c.Y
}

// farthestByHops runs a breadth-first traversal over room connections and
// returns the room with the most hops from start. Ties keep the lowest
// room index.
func farthestByHops(rooms []Room, start int) int {
	hops := make([]int, len(rooms))
	for i := range hops {
		hops[i] = -1
	}
	hops[start] = 0

	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range rooms[cur].Connections {
			if hops[next] == -1 {
				hops[next] = hops[cur] + 1
				queue = append(queue, next)
			}
		}
	}

	far := start
	for i := range rooms {
		if hops[i] > hops[far] {
			far = i
		}
	}
	return far
}

func specialChance(theme string) float64 {
	if theme == "" {
		return 0.12
	}
	return 0.18
}
