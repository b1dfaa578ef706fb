package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// memStore is an in-memory Store[T] for tests and database-free runs.
// Per-family behavior (identity, slug, filtering, ordering) is injected, so
// one implementation covers the whole catalog.
type memStore[T any] struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*T
	resource string
	id       func(*T) uuid.UUID
	slug     func(*T) string
	match    func(*T, ListFilter) bool
	less     func(a, b *T) bool
	clone    func(*T) *T
}

func (m *memStore[T]) Create(_ context.Context, record *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := m.clone(record)
	m.records[m.id(clone)] = clone
	return m.clone(clone), nil
}

func (m *memStore[T]) Update(_ context.Context, record *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id(record)
	if _, ok := m.records[id]; !ok {
		return nil, &NotFoundError{Resource: m.resource, Key: id.String()}
	}
	clone := m.clone(record)
	m.records[id] = clone
	return m.clone(clone), nil
}

func (m *memStore[T]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: m.resource, Key: id.String()}
	}
	return m.clone(record), nil
}

func (m *memStore[T]) GetBySlug(_ context.Context, slug string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.records {
		if m.slug(record) == slug {
			return m.clone(record), nil
		}
	}
	return nil, &NotFoundError{Resource: m.resource, Key: slug}
}

func (m *memStore[T]) List(_ context.Context, filter ListFilter) ([]*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*T, 0, len(m.records))
	for _, record := range m.records {
		if !m.match(record, filter) {
			continue
		}
		out = append(out, m.clone(record))
	}
	sort.SliceStable(out, func(i, j int) bool { return m.less(out[i], out[j]) })
	return out, nil
}

func (m *memStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return &NotFoundError{Resource: m.resource, Key: id.String()}
	}
	delete(m.records, id)
	return nil
}

// NewMemoryStores builds in-memory stores for every catalog family.
func NewMemoryStores() Stores {
	return Stores{
		Departments: &memStore[Department]{
			records:  map[uuid.UUID]*Department{},
			resource: "department",
			id:       func(r *Department) uuid.UUID { return r.ID },
			slug:     func(r *Department) string { return r.Slug },
			match: func(r *Department, f ListFilter) bool {
				return !f.ActiveOnly || r.IsActive
			},
			less: func(a, b *Department) bool {
				if a.OrderIndex != b.OrderIndex {
					return a.OrderIndex < b.OrderIndex
				}
				return a.CreatedAt.Before(b.CreatedAt)
			},
			clone: func(r *Department) *Department { c := *r; return &c },
		},
		Laboratories: &memStore[Laboratory]{
			records:  map[uuid.UUID]*Laboratory{},
			resource: "laboratory",
			id:       func(r *Laboratory) uuid.UUID { return r.ID },
			slug:     func(r *Laboratory) string { return r.Slug },
			match: func(r *Laboratory, f ListFilter) bool {
				if f.ActiveOnly && !r.IsActive {
					return false
				}
				if f.DepartmentID != nil {
					return r.DepartmentID != nil && *r.DepartmentID == *f.DepartmentID
				}
				return true
			},
			less: func(a, b *Laboratory) bool {
				if a.OrderIndex != b.OrderIndex {
					return a.OrderIndex < b.OrderIndex
				}
				return a.CreatedAt.Before(b.CreatedAt)
			},
			clone: func(r *Laboratory) *Laboratory {
				c := *r
				if r.DepartmentID != nil {
					id := *r.DepartmentID
					c.DepartmentID = &id
				}
				return &c
			},
		},
		Courses: &memStore[Course]{
			records:  map[uuid.UUID]*Course{},
			resource: "course",
			id:       func(r *Course) uuid.UUID { return r.ID },
			slug:     func(r *Course) string { return r.Slug },
			match: func(r *Course, f ListFilter) bool {
				if f.ActiveOnly && !r.IsActive {
					return false
				}
				if f.DepartmentID != nil {
					return r.DepartmentID != nil && *r.DepartmentID == *f.DepartmentID
				}
				return true
			},
			less: func(a, b *Course) bool {
				if a.OrderIndex != b.OrderIndex {
					return a.OrderIndex < b.OrderIndex
				}
				return a.CreatedAt.Before(b.CreatedAt)
			},
			clone: func(r *Course) *Course {
				c := *r
				if r.DepartmentID != nil {
					id := *r.DepartmentID
					c.DepartmentID = &id
				}
				return &c
			},
		},
		Events: &memStore[Event]{
			records:  map[uuid.UUID]*Event{},
			resource: "event",
			id:       func(r *Event) uuid.UUID { return r.ID },
			slug:     func(r *Event) string { return r.Slug },
			match: func(r *Event, f ListFilter) bool {
				if f.ActiveOnly && !r.IsActive {
					return false
				}
				if f.From != nil {
					if !r.EndsAt.IsZero() {
						if r.EndsAt.Before(*f.From) {
							return false
						}
					} else if r.StartsAt.Before(*f.From) {
						return false
					}
				}
				return true
			},
			less: func(a, b *Event) bool {
				return a.StartsAt.Before(b.StartsAt)
			},
			clone: func(r *Event) *Event { c := *r; return &c },
		},
		Articles: &memStore[Article]{
			records:  map[uuid.UUID]*Article{},
			resource: "article",
			id:       func(r *Article) uuid.UUID { return r.ID },
			slug:     func(r *Article) string { return r.Slug },
			match: func(r *Article, f ListFilter) bool {
				if f.ActiveOnly && !r.IsActive {
					return false
				}
				if f.PublishedBy != nil {
					return r.PublishedAt != nil && !r.PublishedAt.After(*f.PublishedBy)
				}
				return true
			},
			less: func(a, b *Article) bool {
				at, bt := a.CreatedAt, b.CreatedAt
				if a.PublishedAt != nil {
					at = *a.PublishedAt
				}
				if b.PublishedAt != nil {
					bt = *b.PublishedAt
				}
				return at.After(bt)
			},
			clone: func(r *Article) *Article {
				c := *r
				if r.PublishedAt != nil {
					t := *r.PublishedAt
					c.PublishedAt = &t
				}
				if r.Tags != nil {
					c.Tags = make([]string, len(r.Tags))
					copy(c.Tags, r.Tags)
				}
				return &c
			},
		},
	}
}
