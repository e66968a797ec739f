package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/dungeonforge/internal/storage"
)

func TestStorePutGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	record := storage.DungeonRecord{
		ID:         "abc",
		Name:       "Delve of the Test",
		Theme:      "crypt",
		Difficulty: "medium",
		Seed:       7,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Detail:     json.RawMessage(`{"identity":{"name":"Delve of the Test"}}`),
	}
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != record.Name || got.Seed != record.Seed {
		t.Fatalf("Get() = %+v, want %+v", got, record)
	}
	if string(got.Detail) != string(record.Detail) {
		t.Fatalf("detail = %s, want %s", got.Detail, record.Detail)
	}
}

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()

	store := New()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestStoreListNewestFirstWithoutDetail(t *testing.T) {
	t.Parallel()

	store := New()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		record := storage.DungeonRecord{
			ID:        id,
			Name:      id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Detail:    json.RawMessage(`{}`),
		}
		if err := store.Put(ctx, record); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(records))
	}
	if records[0].ID != "third" || records[2].ID != "first" {
		t.Fatalf("List() order = %s, %s, %s", records[0].ID, records[1].ID, records[2].ID)
	}
	for _, r := range records {
		if r.Detail != nil {
			t.Fatalf("List() leaked detail for %s", r.ID)
		}
	}
}
