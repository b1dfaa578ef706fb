package sections

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage operations for page sections.
type Repository interface {
	Create(ctx context.Context, record *Section) (*Section, error)
	Update(ctx context.Context, record *Section) (*Section, error)
	GetByKey(ctx context.Context, pageKey, sectionKey string) (*Section, error)
	ListByPage(ctx context.Context, pageKey string) ([]*Section, error)
}

// NewSectionRepository builds the go-repository-bun backed store for Section
// models. Sections have no globally unique natural key, so the identifier
// falls back to the primary key.
func NewSectionRepository(db *bun.DB) repository.Repository[*Section] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Section]{
		NewRecord: func() *Section { return &Section{} },
		GetID: func(s *Section) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Section, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Section) string {
			if s == nil {
				return ""
			}
			return s.ID.String()
		},
	})
}
