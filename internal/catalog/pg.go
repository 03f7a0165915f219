// Package catalog provides the flooring preset and material repositories
// consumed by the request pipeline. The catalog is read-only here; it is
// maintained out of band.
package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nanofloor/internal/domain"
)

// PresetRepositoryPG implements domain.PresetRepository using PostgreSQL.
type PresetRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewPresetRepository constructs a new preset repository instance.
func NewPresetRepository(pool *pgxpool.Pool) *PresetRepositoryPG {
	return &PresetRepositoryPG{pool: pool}
}

// List returns all published presets ordered by title.
func (r *PresetRepositoryPG) List(ctx context.Context) ([]domain.Preset, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, dimension, style, thumbnail_url
FROM flooring_presets
WHERE published
ORDER BY title ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []domain.Preset
	for rows.Next() {
		var p domain.Preset
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Dimension, &p.Style, &p.ThumbnailURL); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return presets, nil
}

// Get returns a preset by ID, or domain.ErrNotFound.
func (r *PresetRepositoryPG) Get(ctx context.Context, id int) (*domain.Preset, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title, description, dimension, style, thumbnail_url
FROM flooring_presets
WHERE id = $1 AND published;
`, id)

	var p domain.Preset
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Dimension, &p.Style, &p.ThumbnailURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// MaterialRepositoryPG implements domain.MaterialRepository using PostgreSQL.
type MaterialRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository constructs a new material repository instance.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepositoryPG {
	return &MaterialRepositoryPG{pool: pool}
}

// List returns all materials with their guided dimension and style options.
func (r *MaterialRepositoryPG) List(ctx context.Context) ([]domain.Material, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, dimensions, styles
FROM flooring_materials
ORDER BY name ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Dimensions, &m.Styles); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return materials, nil
}

var (
	_ domain.PresetRepository   = (*PresetRepositoryPG)(nil)
	_ domain.MaterialRepository = (*MaterialRepositoryPG)(nil)
)
