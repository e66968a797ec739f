package dungeon

import (
	"math/rand"
	"testing"
)

func TestDoorWeightsScaleWithDifficulty(t *testing.T) {
	t.Parallel()

	easyNormal, easyLocked := doorWeights(DifficultyEasy)
	deadlyNormal, deadlyLocked := doorWeights(DifficultyDeadly)
	if deadlyNormal >= easyNormal {
		t.Fatal("deadly difficulty should reduce normal door share")
	}
	if deadlyLocked <= easyLocked {
		t.Fatal("deadly difficulty should raise locked door share")
	}

	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly} {
		normal, locked := doorWeights(d)
		if normal+locked >= 100 {
			t.Fatalf("%s door weights leave no room for secret doors", d)
		}
	}
}

func TestNewDoorStateMatchesType(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		door := newDoor(i, Point{X: 1, Y: 1}, DifficultyDeadly, rng)
		switch door.Type {
		case DoorNormal, DoorSecret:
			if door.State != DoorStateClosed {
				t.Fatalf("%s door generated %s, want closed", door.Type, door.State)
			}
		case DoorLocked:
			if door.State != DoorStateLocked {
				t.Fatalf("locked door generated %s, want locked", door.State)
			}
		default:
			t.Fatalf("unknown door type %q", door.Type)
		}
	}
}

func TestPlaceDoorsEmitsOnePerJunction(t *testing.T) {
	t.Parallel()

	// Two rooms joined by one straight corridor across a three-cell gap.
	g := newGrid(20, 10)
	rooms := []Room{
		{ID: 0, X: 1, Y: 3, Width: 4, Height: 4},
		{ID: 1, X: 9, Y: 3, Width: 4, Height: 4},
	}
	g.markRoom(rooms[0])
	g.markRoom(rooms[1])

	path, ok := carvePath(g, rooms, 0, 1)
	if !ok {
		t.Fatal("expected a straight carve between facing rooms")
	}
	corridors := []Corridor{{ID: 0, Path: path}}

	doors := placeDoors(g, rooms, corridors, DifficultyMedium, rand.New(rand.NewSource(3)))
	if len(doors) != 2 {
		t.Fatalf("expected 2 doors for one corridor, got %d", len(doors))
	}
	if len(rooms[0].Doors) != 1 || len(rooms[1].Doors) != 1 {
		t.Fatalf("expected one door per room, got %d and %d", len(rooms[0].Doors), len(rooms[1].Doors))
	}

	// Replaying the same corridors must not duplicate doors.
	again := placeDoors(g, rooms, corridors, DifficultyMedium, rand.New(rand.NewSource(3)))
	if len(again) != 2 {
		t.Fatalf("door placement is not stable: got %d doors on replay", len(again))
	}
}

func TestPlaceDoorsSharedCellRegistersBothRooms(t *testing.T) {
	t.Parallel()

	// Rooms separated by a single gap column: the lone corridor cell
	// touches both rooms and must yield one door shared by both.
	g := newGrid(12, 8)
	rooms := []Room{
		{ID: 0, X: 1, Y: 2, Width: 3, Height: 3},
		{ID: 1, X: 5, Y: 2, Width: 3, Height: 3},
	}
	g.markRoom(rooms[0])
	g.markRoom(rooms[1])

	path, ok := carvePath(g, rooms, 0, 1)
	if !ok {
		t.Fatal("expected a carve across the single gap")
	}
	doors := placeDoors(g, rooms, []Corridor{{ID: 0, Path: path}}, DifficultyMedium, rand.New(rand.NewSource(5)))

	if len(doors) != 1 {
		t.Fatalf("expected a single shared door, got %d", len(doors))
	}
	if len(rooms[0].Doors) != 1 || rooms[0].Doors[0] != doors[0].ID {
		t.Fatalf("room 0 door refs = %v", rooms[0].Doors)
	}
	if len(rooms[1].Doors) != 1 || rooms[1].Doors[0] != doors[0].ID {
		t.Fatalf("room 1 door refs = %v", rooms[1].Doors)
	}
}
