package migrations

import "embed"

// FS contains embedded SQLite migrations for dungeon storage.
//
//go:embed *.sql
var FS embed.FS
