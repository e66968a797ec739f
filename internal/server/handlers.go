package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/dungeonforge/internal/dungeon"
	"github.com/louisbranch/dungeonforge/internal/platform/errors"
	"github.com/louisbranch/dungeonforge/internal/storage"
)

var tracer = otel.Tracer("github.com/louisbranch/dungeonforge/internal/server")

const maxRequestBody = 1 << 20

type generateResponse struct {
	ID      string         `json:"id"`
	Seed    int64          `json:"seed"`
	Report  dungeon.Report `json:"report"`
	Dungeon dungeon.Detail `json:"dungeon"`
}

type dungeonResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Theme      string          `json:"theme,omitempty"`
	Difficulty string          `json:"difficulty"`
	Seed       int64           `json:"seed"`
	CreatedAt  time.Time       `json:"created_at"`
	Dungeon    json.RawMessage `json:"dungeon,omitempty"`
}

type listResponse struct {
	Dungeons []dungeonResponse `json:"dungeons"`
}

func (s *Server) handleGenerateDungeon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params dungeon.Params
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&params); err != nil {
		writeError(w, errors.New(errors.CodeRequestInvalidPayload,
			fmt.Sprintf("decode request body: %v", err)))
		return
	}

	if params.Seed == 0 {
		seed, err := s.newSeed()
		if err != nil {
			writeError(w, errors.Wrap(errors.CodeUnknown, "generate seed", err))
			return
		}
		params.Seed = seed
	}

	ctx, span := tracer.Start(ctx, "GenerateDungeon")
	defer span.End()
	span.SetAttributes(
		attribute.Int("dungeon.grid_width", params.GridWidth),
		attribute.Int("dungeon.grid_height", params.GridHeight),
		attribute.Int("dungeon.levels_requested", params.NumLevels),
		attribute.String("dungeon.difficulty", string(params.Difficulty)),
	)

	result, err := dungeon.Generate(params)
	if err != nil {
		writeError(w, err)
		return
	}

	roomsPlaced := 0
	for _, level := range result.Report.Levels {
		roomsPlaced += level.RoomsPlaced
	}
	span.SetAttributes(
		attribute.Int("dungeon.levels_built", len(result.Detail.Structure.Levels)),
		attribute.Int("dungeon.rooms_placed", roomsPlaced),
	)

	if params.UseAI && s.enhancer != nil {
		if err := s.enhancer.Enhance(ctx, &result.Detail); err != nil {
			writeError(w, errors.Wrap(errors.CodeUnknown, "enhance dungeon", err))
			return
		}
	}

	detailJSON, err := json.Marshal(result.Detail)
	if err != nil {
		writeError(w, errors.Wrap(errors.CodeUnknown, "encode dungeon detail", err))
		return
	}

	dungeonID, err := s.newID()
	if err != nil {
		writeError(w, errors.Wrap(errors.CodeUnknown, "generate dungeon id", err))
		return
	}

	record := storage.DungeonRecord{
		ID:         dungeonID,
		Name:       result.Detail.Identity.Name,
		Theme:      result.Detail.Identity.Theme,
		Difficulty: string(result.Detail.Identity.Difficulty),
		Seed:       params.Seed,
		CreatedAt:  s.now(),
		Detail:     detailJSON,
	}
	if err := s.store.Put(ctx, record); err != nil {
		writeError(w, errors.Wrap(errors.CodeUnknown, "store dungeon", err))
		return
	}

	writeJSON(w, http.StatusCreated, generateResponse{
		ID:      dungeonID,
		Seed:    params.Seed,
		Report:  result.Report,
		Dungeon: result.Detail,
	})
}

func (s *Server) handleGetDungeon(w http.ResponseWriter, r *http.Request) {
	dungeonID := strings.TrimSpace(r.PathValue("dungeonID"))
	if dungeonID == "" {
		writeError(w, errors.New(errors.CodeRequestInvalidPayload, "dungeon id is required"))
		return
	}

	record, err := s.store.Get(r.Context(), dungeonID)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			writeError(w, errors.New(errors.CodeNotFound,
				fmt.Sprintf("dungeon %s not found", dungeonID)))
			return
		}
		writeError(w, errors.Wrap(errors.CodeUnknown, "load dungeon", err))
		return
	}

	writeJSON(w, http.StatusOK, recordResponse(record, true))
}

func (s *Server) handleListDungeons(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.CodeUnknown, "list dungeons", err))
		return
	}

	response := listResponse{Dungeons: make([]dungeonResponse, 0, len(records))}
	for _, record := range records {
		response.Dungeons = append(response.Dungeons, recordResponse(record, false))
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func recordResponse(record storage.DungeonRecord, includeDetail bool) dungeonResponse {
	response := dungeonResponse{
		ID:         record.ID,
		Name:       record.Name,
		Theme:      record.Theme,
		Difficulty: record.Difficulty,
		Seed:       record.Seed,
		CreatedAt:  record.CreatedAt.UTC(),
	}
	if includeDetail {
		response.Dungeon = record.Detail
	}
	return response
}

// writeJSON writes a JSON body with normalized headers and status.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response using typed code to status mapping.
func writeError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	message := err.Error()
	var appErr *errors.Error
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	writeJSON(w, code.HTTPStatus(), map[string]any{
		"error": map[string]string{
			"code":    string(code),
			"message": message,
		},
	})
}
