package handlers

import (
	"net/http"

	"nanofloor/internal/domain"
)

// ListPresets returns the flooring preset catalog consumed by the widget.
func (a *App) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := a.Presets.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("catalog: list presets failed")
		a.error(w, http.StatusInternalServerError, "failed to load presets")
		return
	}
	if presets == nil {
		presets = []domain.Preset{}
	}
	a.json(w, http.StatusOK, map[string]any{"presets": presets})
}

// ListMaterials returns the material catalog for the custom-selection panel.
func (a *App) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := a.Materials.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("catalog: list materials failed")
		a.error(w, http.StatusInternalServerError, "failed to load materials")
		return
	}
	if materials == nil {
		materials = []domain.Material{}
	}
	a.json(w, http.StatusOK, map[string]any{"materials": materials})
}
