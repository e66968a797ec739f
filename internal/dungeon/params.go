package dungeon

import (
	"fmt"

	"github.com/louisbranch/dungeonforge/internal/platform/errors"
)

// Difficulty scales room density, door locks, and feature frequency.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyDeadly Difficulty = "deadly"
)

// Valid reports whether the difficulty is a known value.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly:
		return true
	}
	return false
}

// densityMultiplier scales the target room count. Harder dungeons pack
// rooms more densely.
func (d Difficulty) densityMultiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	case DifficultyDeadly:
		return 1.5
	default:
		return 1.0
	}
}

// Params are the inputs to one generation request.
//
// UseAI is not consumed by the pipeline itself; it signals the image
// enhancement collaborator to run after generation returns.
type Params struct {
	GridWidth   int        `json:"grid_width"`
	GridHeight  int        `json:"grid_height"`
	NumLevels   int        `json:"num_levels"`
	MinRoomSize int        `json:"min_room_size"`
	MaxRoomSize int        `json:"max_room_size"`
	Theme       string     `json:"theme"`
	Difficulty  Difficulty `json:"difficulty"`
	UseAI       bool       `json:"use_ai"`
	Seed        int64      `json:"seed,omitempty"`
}

// Validate checks parameter consistency. Generation refuses to start on
// invalid input; it never fails afterwards short of an internal fault.
func (p Params) Validate() error {
	if p.GridWidth <= 0 || p.GridHeight <= 0 {
		return errors.WithMetadata(errors.CodeDungeonInvalidGridSize,
			fmt.Sprintf("grid dimensions must be positive, got %dx%d", p.GridWidth, p.GridHeight),
			map[string]string{
				"grid_width":  fmt.Sprintf("%d", p.GridWidth),
				"grid_height": fmt.Sprintf("%d", p.GridHeight),
			})
	}
	if p.MinRoomSize <= 0 {
		return errors.New(errors.CodeDungeonInvalidRoomBounds,
			fmt.Sprintf("min room size must be positive, got %d", p.MinRoomSize))
	}
	if p.MaxRoomSize < p.MinRoomSize {
		return errors.New(errors.CodeDungeonInvalidRoomBounds,
			fmt.Sprintf("max room size %d is smaller than min room size %d", p.MaxRoomSize, p.MinRoomSize))
	}
	if p.NumLevels < 1 {
		return errors.New(errors.CodeDungeonInvalidLevelCount,
			fmt.Sprintf("at least one level is required, got %d", p.NumLevels))
	}
	if !p.Difficulty.Valid() {
		return errors.New(errors.CodeDungeonInvalidDifficulty,
			fmt.Sprintf("unknown difficulty %q", p.Difficulty))
	}
	return nil
}
