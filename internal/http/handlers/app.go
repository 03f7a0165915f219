package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"nanofloor/internal/assets"
	"nanofloor/internal/domain"
	"nanofloor/internal/genai"
	"nanofloor/internal/infra"
	"nanofloor/internal/middleware"
)

// FloorRenderer is the image-generation dependency of the orchestrator.
type FloorRenderer interface {
	RenderFloor(ctx context.Context, room domain.ValidatedImage, sel domain.Selection, reference *domain.ValidatedImage, width, height int) (*genai.Result, error)
}

// ResultStore persists generation results.
type ResultStore interface {
	Persist(ctx context.Context, res *genai.Result) assets.PersistedAsset
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Config        *infra.Config
	Logger        infra.Logger
	Presets       domain.PresetRepository
	Materials     domain.MaterialRepository
	Renderer      FloorRenderer
	Limiter       *middleware.RateLimiter
	Store         ResultStore
	CountryLookup middleware.CountryLookup
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"message": message})
}

// Health reports liveness.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
