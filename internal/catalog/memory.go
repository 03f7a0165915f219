package catalog

import (
	"context"
	"sort"
	"sync"

	"nanofloor/internal/domain"
)

// Memory is an in-memory preset and material catalog. It backs tests and
// database-less deployments where only custom selections are offered.
type Memory struct {
	mu        sync.RWMutex
	presets   map[int]domain.Preset
	materials []domain.Material
}

// NewMemory constructs an in-memory catalog seeded with the given entries.
func NewMemory(presets []domain.Preset, materials []domain.Material) *Memory {
	m := &Memory{presets: make(map[int]domain.Preset)}
	for _, p := range presets {
		m.presets[p.ID] = p
	}
	m.materials = append(m.materials, materials...)
	return m
}

// List returns all presets ordered by title.
func (m *Memory) List(ctx context.Context) ([]domain.Preset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Preset, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a preset by ID, or domain.ErrNotFound.
func (m *Memory) Get(ctx context.Context, id int) (*domain.Preset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.presets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// ListMaterials returns all materials.
func (m *Memory) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Material, len(m.materials))
	copy(out, m.materials)
	return out, nil
}

// Materials adapts the memory catalog to domain.MaterialRepository.
func (m *Memory) Materials() domain.MaterialRepository {
	return materialView{m}
}

type materialView struct{ m *Memory }

func (v materialView) List(ctx context.Context) ([]domain.Material, error) {
	return v.m.ListMaterials(ctx)
}

var _ domain.PresetRepository = (*Memory)(nil)
