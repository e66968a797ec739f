// Package storage defines persistence contracts for generated dungeons.
//
// Stores keep the generated structure verbatim as an opaque JSON document;
// only identity metadata is lifted into queryable fields.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// DungeonRecord is one persisted dungeon document.
type DungeonRecord struct {
	ID         string
	Name       string
	Theme      string
	Difficulty string
	Seed       int64
	CreatedAt  time.Time
	Detail     json.RawMessage
}

// DungeonStore persists dungeon records.
type DungeonStore interface {
	// Put stores a record. An existing record with the same ID is replaced.
	Put(ctx context.Context, record DungeonRecord) error
	// Get loads one record by ID, returning ErrNotFound when absent.
	Get(ctx context.Context, id string) (DungeonRecord, error)
	// List returns record metadata (Detail omitted), newest first.
	List(ctx context.Context) ([]DungeonRecord, error)
}
