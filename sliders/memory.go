package sliders

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemorySliderRepository is an in-memory Repository for tests and for running
// the module without a database.
type MemorySliderRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Slider
}

func NewMemorySliderRepository() *MemorySliderRepository {
	return &MemorySliderRepository{records: map[uuid.UUID]*Slider{}}
}

func (m *MemorySliderRepository) Create(_ context.Context, record *Slider) (*Slider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := cloneSlider(record)
	m.records[clone.ID] = clone
	return cloneSlider(clone), nil
}

func (m *MemorySliderRepository) Update(_ context.Context, record *Slider) (*Slider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{ID: record.ID}
	}
	clone := cloneSlider(record)
	m.records[clone.ID] = clone
	return cloneSlider(clone), nil
}

func (m *MemorySliderRepository) GetByID(_ context.Context, id uuid.UUID) (*Slider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return cloneSlider(record), nil
}

func (m *MemorySliderRepository) List(_ context.Context, activeOnly bool) ([]*Slider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Slider, 0, len(m.records))
	for _, record := range m.records {
		if activeOnly && !record.IsActive {
			continue
		}
		out = append(out, cloneSlider(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemorySliderRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(m.records, id)
	return nil
}

func cloneSlider(src *Slider) *Slider {
	if src == nil {
		return nil
	}
	clone := *src
	if src.Stats != nil {
		clone.Stats = make([]Stat, len(src.Stats))
		copy(clone.Stats, src.Stats)
	}
	return &clone
}
