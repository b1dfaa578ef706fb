package sections

import (
	"context"
	"sort"
	"sync"
)

// MemorySectionRepository is an in-memory implementation for scaffolding and
// tests.
type MemorySectionRepository struct {
	mu       sync.RWMutex
	sections map[string]*Section
}

// NewMemorySectionRepository creates an empty in-memory section repository.
func NewMemorySectionRepository() *MemorySectionRepository {
	return &MemorySectionRepository{
		sections: make(map[string]*Section),
	}
}

func sectionKey(pageKey, key string) string {
	return pageKey + "\x00" + key
}

// Create inserts the supplied section.
func (m *MemorySectionRepository) Create(_ context.Context, record *Section) (*Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneSection(record)
	m.sections[sectionKey(copied.PageKey, copied.SectionKey)] = copied
	return cloneSection(copied), nil
}

// Update replaces the stored record for the section's key.
func (m *MemorySectionRepository) Update(_ context.Context, record *Section) (*Section, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := sectionKey(record.PageKey, record.SectionKey)
	if _, ok := m.sections[key]; !ok {
		return nil, &NotFoundError{Resource: "section", Key: record.PageKey + ":" + record.SectionKey}
	}
	copied := cloneSection(record)
	m.sections[key] = copied
	return cloneSection(copied), nil
}

// GetByKey retrieves a section by its business key.
func (m *MemorySectionRepository) GetByKey(_ context.Context, pageKey, key string) (*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.sections[sectionKey(pageKey, key)]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: pageKey + ":" + key}
	}
	return cloneSection(rec), nil
}

// ListByPage returns all sections for a page ordered by order_index with
// creation time breaking ties.
func (m *MemorySectionRepository) ListByPage(_ context.Context, pageKey string) ([]*Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Section, 0)
	for _, rec := range m.sections {
		if rec.PageKey == pageKey {
			out = append(out, cloneSection(rec))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func cloneSection(src *Section) *Section {
	if src == nil {
		return nil
	}

	copied := *src
	if src.Images != nil {
		copied.Images = make([]string, len(src.Images))
		copy(copied.Images, src.Images)
	}
	if src.ButtonLink != nil {
		link := *src.ButtonLink
		copied.ButtonLink = &link
	}
	return &copied
}
