package dungeon

import "math/rand"

// doorWeights returns the percentage split between normal, locked, and
// secret doors. Harder dungeons lock and hide more of them.
func doorWeights(d Difficulty) (normal, locked int) {
	switch d {
	case DifficultyEasy:
		return 85, 10
	case DifficultyHard:
		return 60, 25
	case DifficultyDeadly:
		return 50, 30
	default:
		return 75, 15
	}
}

// placeDoors emits one door for every corridor cell that touches a room
// boundary. A cell shared by two rooms yields a single door registered on
// both. Corridors are walked in carve order so door IDs are deterministic.
func placeDoors(g *grid, rooms []Room, corridors []Corridor, difficulty Difficulty, rng *rand.Rand) []Door {
	var doors []Door
	doorAt := make(map[Point]int)

	for _, c := range corridors {
		for _, pt := range c.Path {
			if g.at(pt.X, pt.Y) != cellCorridor {
				continue
			}
			for _, n := range neighbors(pt) {
				if !g.inBounds(n.X, n.Y) || g.at(n.X, n.Y) != cellRoom {
					continue
				}
				idx := roomIndexAt(rooms, n)
				if idx < 0 {
					continue
				}

				doorID, exists := doorAt[pt]
				if !exists {
					doorID = len(doors)
					doorAt[pt] = doorID
					doors = append(doors, newDoor(doorID, pt, difficulty, rng))
				}
				if !containsInt(rooms[idx].Doors, doorID) {
					rooms[idx].Doors = append(rooms[idx].Doors, doorID)
				}
			}
		}
	}

	return doors
}

func newDoor(id int, pt Point, difficulty Difficulty, rng *rand.Rand) Door {
	normal, locked := doorWeights(difficulty)
	roll := rng.Intn(100)

	door := Door{ID: id, X: pt.X, Y: pt.Y}
	switch {
	case roll < normal:
		door.Type = DoorNormal
		door.State = DoorStateClosed
	case roll < normal+locked:
		door.Type = DoorLocked
		door.State = DoorStateLocked
	default:
		door.Type = DoorSecret
		door.State = DoorStateClosed
	}
	return door
}

func neighbors(pt Point) [4]Point {
	return [4]Point{
		{X: pt.X, Y: pt.Y - 1},
		{X: pt.X - 1, Y: pt.Y},
		{X: pt.X + 1, Y: pt.Y},
		{X: pt.X, Y: pt.Y + 1},
	}
}
