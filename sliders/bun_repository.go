package sliders

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

const sliderNamespace = "hero_slider"

// BunSliderRepository implements Repository with optional caching. Public
// pages read the carousel on every render, so cached reads pay off here more
// than anywhere else in the module.
type BunSliderRepository struct {
	repo         repository.Repository[*Slider]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunSliderRepository creates a slider repository without caching.
func NewBunSliderRepository(db *bun.DB) *BunSliderRepository {
	return NewBunSliderRepositoryWithCache(db, nil, nil)
}

// NewBunSliderRepositoryWithCache creates a slider repository with caching
// services.
func NewBunSliderRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunSliderRepository {
	base := NewSliderRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = sliderNamespace + cache.KeySeparator
	}
	return &BunSliderRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunSliderRepository) Create(ctx context.Context, record *Slider) (*Slider, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunSliderRepository) Update(ctx context.Context, record *Slider) (*Slider, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunSliderRepository) GetByID(ctx context.Context, id uuid.UUID) (*Slider, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapSliderError(err, id)
	}
	return record, nil
}

func (r *BunSliderRepository) List(ctx context.Context, activeOnly bool) ([]*Slider, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			if activeOnly {
				q = q.Where("?TableAlias.is_active = ?", true)
			}
			return q.OrderExpr("?TableAlias.order_index ASC").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BunSliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return r.repo.Delete(ctx, &Slider{ID: id})
}

// InvalidateCache drops cached slider reads after admin writes.
func (r *BunSliderRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapSliderError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{ID: id}
	}
	return fmt.Errorf("slider repository error: %w", err)
}
