package catalog

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// bunStore implements Store[T] on top of go-repository-bun. All catalog
// tables share the slug/is_active column conventions, so one generic wrapper
// covers every family; per-family differences are limited to ordering and
// which filter columns exist.
type bunStore[T any] struct {
	repo      repository.Repository[*T]
	resource  string
	newWithID func(id uuid.UUID) *T
	order     []string
}

func (s *bunStore[T]) Create(ctx context.Context, record *T) (*T, error) {
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, s.mapError(err, "")
	}
	return created, nil
}

func (s *bunStore[T]) Update(ctx context.Context, record *T) (*T, error) {
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, s.mapError(err, "")
	}
	return updated, nil
}

func (s *bunStore[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	record, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, s.mapError(err, id.String())
	}
	return record, nil
}

func (s *bunStore[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	record, err := s.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, s.mapError(err, slug)
	}
	return record, nil
}

func (s *bunStore[T]) List(ctx context.Context, filter ListFilter) ([]*T, error) {
	records, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if filter.ActiveOnly {
				q = q.Where("?TableAlias.is_active = ?", true)
			}
			if filter.DepartmentID != nil {
				q = q.Where("?TableAlias.department_id = ?", *filter.DepartmentID)
			}
			if filter.PublishedBy != nil {
				q = q.Where("?TableAlias.published_at IS NOT NULL").
					Where("?TableAlias.published_at <= ?", *filter.PublishedBy)
			}
			if filter.From != nil {
				// In-progress events stay listed until they end; events
				// without an end time are judged by their start.
				q = q.Where("(?TableAlias.ends_at >= ? OR (?TableAlias.ends_at IS NULL AND ?TableAlias.starts_at >= ?))",
					*filter.From, *filter.From)
			}
			for _, expr := range s.order {
				q = q.OrderExpr(expr)
			}
			return q
		}),
	)
	if err != nil {
		return nil, s.mapError(err, "")
	}
	return records, nil
}

func (s *bunStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.newWithID(id))
}

func (s *bunStore[T]) mapError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: s.resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", s.resource, err)
}

var defaultOrder = []string{
	"?TableAlias.order_index ASC",
	"?TableAlias.created_at ASC",
}

// NewBunStores builds bun-backed stores for every catalog family.
func NewBunStores(db *bun.DB) Stores {
	return NewBunStoresWithCache(db, nil, nil)
}

// NewBunStoresWithCache builds bun-backed stores with an optional
// read-through cache. Caching is disabled unless both a cache service and a
// key serializer are provided.
func NewBunStoresWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) Stores {
	cached := cacheService != nil && serializer != nil

	departments := repository.MustNewRepository(db, departmentHandlers())
	laboratories := repository.MustNewRepository(db, laboratoryHandlers())
	courses := repository.MustNewRepository(db, courseHandlers())
	events := repository.MustNewRepository(db, eventHandlers())
	articles := repository.MustNewRepository(db, articleHandlers())

	if cached {
		departments = repositorycache.New(departments, cacheService, serializer)
		laboratories = repositorycache.New(laboratories, cacheService, serializer)
		courses = repositorycache.New(courses, cacheService, serializer)
		events = repositorycache.New(events, cacheService, serializer)
		articles = repositorycache.New(articles, cacheService, serializer)
	}

	return Stores{
		Departments: &bunStore[Department]{
			repo:      departments,
			resource:  "department",
			newWithID: func(id uuid.UUID) *Department { return &Department{ID: id} },
			order:     defaultOrder,
		},
		Laboratories: &bunStore[Laboratory]{
			repo:      laboratories,
			resource:  "laboratory",
			newWithID: func(id uuid.UUID) *Laboratory { return &Laboratory{ID: id} },
			order:     defaultOrder,
		},
		Courses: &bunStore[Course]{
			repo:      courses,
			resource:  "course",
			newWithID: func(id uuid.UUID) *Course { return &Course{ID: id} },
			order:     defaultOrder,
		},
		Events: &bunStore[Event]{
			repo:      events,
			resource:  "event",
			newWithID: func(id uuid.UUID) *Event { return &Event{ID: id} },
			order:     []string{"?TableAlias.starts_at ASC"},
		},
		Articles: &bunStore[Article]{
			repo:      articles,
			resource:  "article",
			newWithID: func(id uuid.UUID) *Article { return &Article{ID: id} },
			order: []string{
				"?TableAlias.published_at DESC",
				"?TableAlias.created_at DESC",
			},
		},
	}
}
