// Package server exposes dungeon generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/dungeonforge/internal/dungeon"
	"github.com/louisbranch/dungeonforge/internal/platform/id"
	"github.com/louisbranch/dungeonforge/internal/platform/timeouts"
	"github.com/louisbranch/dungeonforge/internal/random"
	"github.com/louisbranch/dungeonforge/internal/storage"
)

// Enhancer runs a post-generation pass over the dungeon, typically to
// attach rendered map imagery to each level. Implementations live outside
// this module.
type Enhancer interface {
	Enhance(ctx context.Context, detail *dungeon.Detail) error
}

// Server routes dungeon API requests to the generation pipeline and store.
type Server struct {
	store    storage.DungeonStore
	enhancer Enhancer
	now      func() time.Time
	newID    func() (string, error)
	newSeed  func() (int64, error)
}

// Option customizes server construction.
type Option func(*Server)

// WithEnhancer wires a post-generation enhancement pass.
func WithEnhancer(enhancer Enhancer) Option {
	return func(s *Server) {
		s.enhancer = enhancer
	}
}

// New builds a Server over the given store.
func New(store storage.DungeonStore, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, errors.New("dungeon store is required")
	}
	s := &Server{
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   id.NewID,
		newSeed: random.NewSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Handler returns the route table for the dungeon API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/dungeons", s.handleGenerateDungeon)
	mux.HandleFunc("GET /api/dungeons/{dungeonID}", s.handleGetDungeon)
	mux.HandleFunc("GET /api/dungeons", s.handleListDungeons)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe runs the HTTP server until the context ends. On
// cancellation it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	log.Printf("dungeon api listening on %s", addr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
