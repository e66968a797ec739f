package dungeon

import (
	"math/rand"
	"testing"
)

func TestTargetRoomCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Params
		want int
	}{
		{
			"50x50 medium lands in the low teens",
			Params{GridWidth: 50, GridHeight: 50, MinRoomSize: 2, MaxRoomSize: 10, Difficulty: DifficultyMedium},
			13,
		},
		{
			"deadly densifies",
			Params{GridWidth: 50, GridHeight: 50, MinRoomSize: 2, MaxRoomSize: 10, Difficulty: DifficultyDeadly},
			20,
		},
		{
			"easy thins out",
			Params{GridWidth: 50, GridHeight: 50, MinRoomSize: 2, MaxRoomSize: 10, Difficulty: DifficultyEasy},
			11,
		},
		{
			"tiny grid clamps to one",
			Params{GridWidth: 5, GridHeight: 5, MinRoomSize: 8, MaxRoomSize: 10, Difficulty: DifficultyMedium},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := targetRoomCount(tt.p); got != tt.want {
				t.Fatalf("targetRoomCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlaceRoomsRespectsBoundsAndPadding(t *testing.T) {
	t.Parallel()

	p := standardParams()
	g := newGrid(p.GridWidth, p.GridHeight)
	rooms := placeRooms(g, p, rand.New(rand.NewSource(11)))

	if len(rooms) == 0 {
		t.Fatal("expected rooms on a 50x50 grid")
	}
	for i, r := range rooms {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > p.GridWidth || r.Y+r.Height > p.GridHeight {
			t.Fatalf("room %d exceeds grid bounds: %+v", i, r)
		}
		if r.Width < p.MinRoomSize || r.Width > p.MaxRoomSize ||
			r.Height < p.MinRoomSize || r.Height > p.MaxRoomSize {
			t.Fatalf("room %d violates size bounds: %+v", i, r)
		}
		if r.ID != i {
			t.Fatalf("room %d carries ID %d", i, r.ID)
		}
		for j := 0; j < i; j++ {
			if rooms[j].overlapsPadded(r.X, r.Y, r.Width, r.Height) {
				t.Fatalf("rooms %d and %d violate the padding buffer", j, i)
			}
		}
	}
}

func TestPlaceRoomsMarksGridCells(t *testing.T) {
	t.Parallel()

	p := standardParams()
	g := newGrid(p.GridWidth, p.GridHeight)
	rooms := placeRooms(g, p, rand.New(rand.NewSource(12)))

	for _, r := range rooms {
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if g.at(x, y) != cellRoom {
					t.Fatalf("cell (%d,%d) of room %d is not marked", x, y, r.ID)
				}
			}
		}
	}
}

func TestPlaceRoomsGivesUpOnImpossibleGrid(t *testing.T) {
	t.Parallel()

	p := Params{
		GridWidth:   5,
		GridHeight:  5,
		MinRoomSize: 8,
		MaxRoomSize: 10,
		Difficulty:  DifficultyMedium,
	}
	g := newGrid(p.GridWidth, p.GridHeight)
	rooms := placeRooms(g, p, rand.New(rand.NewSource(13)))
	if len(rooms) != 0 {
		t.Fatalf("expected zero rooms when nothing fits, got %d", len(rooms))
	}
}
