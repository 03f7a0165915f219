package domain

import "context"

// Preset is a catalog-defined flooring option managed by an operator.
type Preset struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Dimension    string `json:"dimension"`
	Style        string `json:"style"`
	ThumbnailURL string `json:"thumbnail"`
}

// Material is a flooring material type with its guided dimension and style
// options, used by the custom-selection panel.
type Material struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Dimensions []string `json:"dimensions"`
	Styles     []string `json:"styles"`
}

// PresetRepository is the read-only catalog of flooring presets.
type PresetRepository interface {
	List(ctx context.Context) ([]Preset, error)
	Get(ctx context.Context, id int) (*Preset, error)
}

// MaterialRepository is the read-only catalog of flooring materials.
type MaterialRepository interface {
	List(ctx context.Context) ([]Material, error)
}
