package catalog

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListFilter narrows List results. Zero value lists everything. Fields only
// apply to families that carry the matching column; the service sets them
// accordingly.
type ListFilter struct {
	ActiveOnly   bool
	DepartmentID *uuid.UUID
	PublishedBy  *time.Time // articles: published_at set and not after this instant
	From         *time.Time // events: still running at this instant; ends_at (starts_at when open-ended) at or after it
}

// Store is the storage contract shared by every catalog family.
type Store[T any] interface {
	Create(ctx context.Context, record *T) (*T, error)
	Update(ctx context.Context, record *T) (*T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetBySlug(ctx context.Context, slug string) (*T, error)
	List(ctx context.Context, filter ListFilter) ([]*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Stores bundles one store per family so callers wire the catalog storage as
// a unit.
type Stores struct {
	Departments  Store[Department]
	Laboratories Store[Laboratory]
	Courses      Store[Course]
	Events       Store[Event]
	Articles     Store[Article]
}

func departmentHandlers() repository.ModelHandlers[*Department] {
	return repository.ModelHandlers[*Department]{
		NewRecord:          func() *Department { return &Department{} },
		GetID:              func(r *Department) uuid.UUID { return r.ID },
		SetID:              func(r *Department, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *Department) string { return r.Slug },
	}
}

func laboratoryHandlers() repository.ModelHandlers[*Laboratory] {
	return repository.ModelHandlers[*Laboratory]{
		NewRecord:          func() *Laboratory { return &Laboratory{} },
		GetID:              func(r *Laboratory) uuid.UUID { return r.ID },
		SetID:              func(r *Laboratory, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *Laboratory) string { return r.Slug },
	}
}

func courseHandlers() repository.ModelHandlers[*Course] {
	return repository.ModelHandlers[*Course]{
		NewRecord:          func() *Course { return &Course{} },
		GetID:              func(r *Course) uuid.UUID { return r.ID },
		SetID:              func(r *Course, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *Course) string { return r.Slug },
	}
}

func eventHandlers() repository.ModelHandlers[*Event] {
	return repository.ModelHandlers[*Event]{
		NewRecord:          func() *Event { return &Event{} },
		GetID:              func(r *Event) uuid.UUID { return r.ID },
		SetID:              func(r *Event, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *Event) string { return r.Slug },
	}
}

func articleHandlers() repository.ModelHandlers[*Article] {
	return repository.ModelHandlers[*Article]{
		NewRecord:          func() *Article { return &Article{} },
		GetID:              func(r *Article) uuid.UUID { return r.ID },
		SetID:              func(r *Article, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(r *Article) string { return r.Slug },
	}
}

// NewDepartmentRepository builds the go-repository-bun store for departments.
func NewDepartmentRepository(db *bun.DB) repository.Repository[*Department] {
	return repository.MustNewRepository(db, departmentHandlers())
}

// NewLaboratoryRepository builds the go-repository-bun store for laboratories.
func NewLaboratoryRepository(db *bun.DB) repository.Repository[*Laboratory] {
	return repository.MustNewRepository(db, laboratoryHandlers())
}

// NewCourseRepository builds the go-repository-bun store for courses.
func NewCourseRepository(db *bun.DB) repository.Repository[*Course] {
	return repository.MustNewRepository(db, courseHandlers())
}

// NewEventRepository builds the go-repository-bun store for events.
func NewEventRepository(db *bun.DB) repository.Repository[*Event] {
	return repository.MustNewRepository(db, eventHandlers())
}

// NewArticleRepository builds the go-repository-bun store for articles.
func NewArticleRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, articleHandlers())
}
