package sliders

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository abstracts storage operations for hero slides.
type Repository interface {
	Create(ctx context.Context, record *Slider) (*Slider, error)
	Update(ctx context.Context, record *Slider) (*Slider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Slider, error)
	List(ctx context.Context, activeOnly bool) ([]*Slider, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewSliderRepository builds the go-repository-bun backed store for Slider
// models.
func NewSliderRepository(db *bun.DB) repository.Repository[*Slider] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Slider]{
		NewRecord: func() *Slider { return &Slider{} },
		GetID: func(s *Slider) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Slider, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Slider) string {
			if s == nil {
				return ""
			}
			return s.ID.String()
		},
	})
}
