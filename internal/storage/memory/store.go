// Package memory provides an in-memory dungeon store for tests and
// development runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/louisbranch/dungeonforge/internal/storage"
)

// Store keeps dungeon records in a mutex-guarded map.
type Store struct {
	mu      sync.RWMutex
	records map[string]storage.DungeonRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]storage.DungeonRecord)}
}

// Put stores a record, replacing any existing record with the same ID.
func (s *Store) Put(_ context.Context, record storage.DungeonRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// Get loads one record by ID.
func (s *Store) Get(_ context.Context, id string) (storage.DungeonRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return storage.DungeonRecord{}, storage.ErrNotFound
	}
	return record, nil
}

// List returns record metadata, newest first.
func (s *Store) List(_ context.Context) ([]storage.DungeonRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]storage.DungeonRecord, 0, len(s.records))
	for _, record := range s.records {
		record.Detail = nil
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
