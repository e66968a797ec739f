// Package server parses dungeon API flags and launches the service.
package server

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/dungeonforge/internal/platform/cmd"
	httpserver "github.com/louisbranch/dungeonforge/internal/server"
	"github.com/louisbranch/dungeonforge/internal/storage/sqlite"
)

// Config holds dungeon API command configuration.
type Config struct {
	Port   int    `env:"DUNGEONFORGE_PORT" envDefault:"8080"`
	DBPath string `env:"DUNGEONFORGE_DB_PATH" envDefault:"dungeonforge.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The dungeon API server port")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dungeon API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open dungeon store: %w", err)
		}
		defer store.Close()

		srv, err := httpserver.New(store)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Port))
	})
}
