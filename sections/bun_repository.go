package sections

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// BunSectionRepository implements Repository on top of go-repository-bun.
type BunSectionRepository struct {
	repo repository.Repository[*Section]
}

// NewBunSectionRepository creates a section repository backed by the given DB.
func NewBunSectionRepository(db *bun.DB) *BunSectionRepository {
	return &BunSectionRepository{repo: NewSectionRepository(db)}
}

func (r *BunSectionRepository) Create(ctx context.Context, record *Section) (*Section, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunSectionRepository) Update(ctx context.Context, record *Section) (*Section, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunSectionRepository) GetByKey(ctx context.Context, pageKey, sectionKey string) (*Section, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_key = ?", pageKey).
				Where("?TableAlias.section_key = ?", sectionKey)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "section", pageKey+":"+sectionKey)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "section", Key: fmt.Sprintf("%s:%s", pageKey, sectionKey)}
	}
	return records[0], nil
}

func (r *BunSectionRepository) ListByPage(ctx context.Context, pageKey string) ([]*Section, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_key = ?", pageKey).
				OrderExpr("?TableAlias.order_index ASC").
				OrderExpr("?TableAlias.created_at ASC")
		}),
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
