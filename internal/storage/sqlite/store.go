// Package sqlite provides a SQLite-backed dungeon storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/dungeonforge/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dungeonforge/internal/storage"
	"github.com/louisbranch/dungeonforge/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists generated dungeons in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite dungeon store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put inserts one dungeon record, replacing any existing row with the
// same ID.
func (s *Store) Put(ctx context.Context, record storage.DungeonRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		return fmt.Errorf("dungeon id is required")
	}
	if len(record.Detail) == 0 {
		return fmt.Errorf("dungeon detail is required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO dungeons (
		   id,
		   name,
		   theme,
		   difficulty,
		   seed,
		   detail_json,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id,
		record.Name,
		record.Theme,
		record.Difficulty,
		record.Seed,
		[]byte(record.Detail),
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("put dungeon: %w", err)
	}
	return nil
}

// Get returns one dungeon by ID, including its full detail document.
func (s *Store) Get(ctx context.Context, id string) (storage.DungeonRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.DungeonRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.DungeonRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.DungeonRecord{}, fmt.Errorf("dungeon id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, theme, difficulty, seed, detail_json, created_at
		   FROM dungeons
		  WHERE id = ?`,
		id,
	)

	var record storage.DungeonRecord
	var detail []byte
	var createdAt int64
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Theme,
		&record.Difficulty,
		&record.Seed,
		&detail,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.DungeonRecord{}, storage.ErrNotFound
		}
		return storage.DungeonRecord{}, fmt.Errorf("get dungeon: %w", err)
	}
	record.Detail = detail
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

// List returns dungeon summaries newest first. The detail document is omitted.
func (s *Store) List(ctx context.Context) ([]storage.DungeonRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, theme, difficulty, seed, created_at
		   FROM dungeons
		  ORDER BY created_at DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list dungeons: %w", err)
	}
	defer rows.Close()

	var records []storage.DungeonRecord
	for rows.Next() {
		var record storage.DungeonRecord
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Theme,
			&record.Difficulty,
			&record.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list dungeons: %w", err)
		}
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dungeons: %w", err)
	}
	return records, nil
}

var _ storage.DungeonStore = (*Store)(nil)
