// Package errors provides structured error handling with machine-readable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Generation parameter errors
	CodeDungeonInvalidGridSize   Code = "DUNGEON_INVALID_GRID_SIZE"
	CodeDungeonInvalidRoomBounds Code = "DUNGEON_INVALID_ROOM_BOUNDS"
	CodeDungeonInvalidLevelCount Code = "DUNGEON_INVALID_LEVEL_COUNT"
	CodeDungeonInvalidDifficulty Code = "DUNGEON_INVALID_DIFFICULTY"

	// Generation consistency errors
	CodeDungeonCorridorBlocked Code = "DUNGEON_CORRIDOR_BLOCKED"

	// Request errors
	CodeRequestInvalidPayload Code = "REQUEST_INVALID_PAYLOAD"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeDungeonInvalidGridSize,
		CodeDungeonInvalidRoomBounds,
		CodeDungeonInvalidLevelCount,
		CodeDungeonInvalidDifficulty,
		CodeRequestInvalidPayload:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDungeonCorridorBlocked, CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
