package dungeon

import "math/rand"

// roomSpacingFactor spreads rooms out relative to their average footprint.
// The target count divides the grid area by avgRoomArea * spacing, so a
// 50x50 grid with 2..10 rooms lands in the low teens at medium difficulty.
const roomSpacingFactor = 5.0

// maxConsecutiveRejections bounds the placement loop. Once this many
// candidates in a row fail, the level keeps whatever was placed.
const maxConsecutiveRejections = 150

// targetRoomCount derives the per-level room budget from grid area, average
// room footprint, and difficulty density.
func targetRoomCount(p Params) int {
	avgSize := float64(p.MinRoomSize+p.MaxRoomSize) / 2
	avgArea := avgSize * avgSize
	target := float64(p.GridWidth*p.GridHeight) / (avgArea * roomSpacingFactor)
	target *= p.Difficulty.densityMultiplier()
	if target < 1 {
		return 1
	}
	return int(target)
}

// placeRooms samples candidate rectangles until the target count is reached
// or the rejection budget runs out. Accepted rooms keep a one-cell buffer
// from each other and sit fully inside the grid. A shortfall is not an
// error; the caller records it in the level report.
func placeRooms(g *grid, p Params, rng *rand.Rand) []Room {
	target := targetRoomCount(p)
	rooms := make([]Room, 0, target)
	rejections := 0

	for len(rooms) < target && rejections < maxConsecutiveRejections {
		w := p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)
		h := p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)
		if w > g.width || h > g.height {
			rejections++
			continue
		}

		x := rng.Intn(g.width - w + 1)
		y := rng.Intn(g.height - h + 1)
		if overlapsAny(rooms, x, y, w, h) {
			rejections++
			continue
		}

		room := Room{
			ID:     len(rooms),
			Type:   RoomChamber,
			X:      x,
			Y:      y,
			Width:  w,
			Height: h,
		}
		g.markRoom(room)
		rooms = append(rooms, room)
		rejections = 0
	}

	return rooms
}

func overlapsAny(rooms []Room, x, y, w, h int) bool {
	for _, r := range rooms {
		if r.overlapsPadded(x, y, w, h) {
			return true
		}
	}
	return false
}
