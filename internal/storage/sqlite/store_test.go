package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/dungeonforge/internal/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	input := storage.DungeonRecord{
		ID:         "dgn-1",
		Name:       "Halls of the Hollow King",
		Theme:      "crypt",
		Difficulty: "hard",
		Seed:       424242,
		CreatedAt:  now,
		Detail:     json.RawMessage(`{"identity":{"name":"Halls of the Hollow King","type":"dungeon"}}`),
	}
	if err := store.Put(context.Background(), input); err != nil {
		t.Fatalf("put dungeon: %v", err)
	}

	got, err := store.Get(context.Background(), "dgn-1")
	if err != nil {
		t.Fatalf("get dungeon: %v", err)
	}
	if got.ID != input.ID {
		t.Fatalf("id = %q, want %q", got.ID, input.ID)
	}
	if got.Name != input.Name {
		t.Fatalf("name = %q, want %q", got.Name, input.Name)
	}
	if got.Difficulty != input.Difficulty {
		t.Fatalf("difficulty = %q, want %q", got.Difficulty, input.Difficulty)
	}
	if got.Seed != input.Seed {
		t.Fatalf("seed = %d, want %d", got.Seed, input.Seed)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, now)
	}
	if string(got.Detail) != string(input.Detail) {
		t.Fatalf("detail = %s, want %s", got.Detail, input.Detail)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.Get(context.Background(), "absent")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestPutRequiresIDAndDetail(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	err := store.Put(context.Background(), storage.DungeonRecord{Detail: json.RawMessage(`{}`)})
	if err == nil {
		t.Fatal("expected missing id error")
	}
	err = store.Put(context.Background(), storage.DungeonRecord{ID: "dgn-2"})
	if err == nil {
		t.Fatal("expected missing detail error")
	}
}

func TestListNewestFirstOmitsDetail(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	base := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"older", "middle", "newest"} {
		record := storage.DungeonRecord{
			ID:         id,
			Name:       id,
			Difficulty: "medium",
			Seed:       int64(i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			Detail:     json.RawMessage(`{}`),
		}
		if err := store.Put(context.Background(), record); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}

	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list dungeons: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("list returned %d records, want 3", len(records))
	}
	if records[0].ID != "newest" || records[2].ID != "older" {
		t.Fatalf("list order = %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}
	for _, record := range records {
		if len(record.Detail) != 0 {
			t.Fatalf("list leaked detail for %s", record.ID)
		}
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dungeons.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	record := storage.DungeonRecord{
		ID:         "dgn-persist",
		Name:       "Persistent Depths",
		Difficulty: "easy",
		Seed:       1,
		CreatedAt:  time.Date(2026, time.May, 5, 5, 5, 5, 0, time.UTC),
		Detail:     json.RawMessage(`{}`),
	}
	if err := store.Put(context.Background(), record); err != nil {
		t.Fatalf("put dungeon: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), "dgn-persist")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Name != record.Name {
		t.Fatalf("name = %q, want %q", got.Name, record.Name)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "dungeons.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
