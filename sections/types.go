package sections

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/alqalam/campus-cms/locale"
)

// PageHome is the reserved page key for home-page sections. Admin calls that
// omit a page key operate on this scope.
const PageHome = "home"

// Section is one named, orderable, activatable block of page content. It is
// the persisted unit behind both the home-page editor and the per-page
// section editors; a section never references other entities.
type Section struct {
	bun.BaseModel `bun:"table:page_sections,alias:ps"`

	ID          uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	PageKey     string            `bun:"page_key,notnull" json:"page_key"`
	SectionKey  string            `bun:"section_key,notnull" json:"section_key"`
	Title       locale.Text       `bun:"title,type:text" json:"title"`
	Subtitle    locale.Text       `bun:"subtitle,type:text" json:"subtitle"`
	Description locale.Text       `bun:"description,type:text" json:"description"`
	ButtonText  locale.Text       `bun:"button_text,type:text" json:"button_text"`
	ButtonLink  *string           `bun:"button_link" json:"button_link,omitempty"`
	Images      []string          `bun:"images,type:jsonb" json:"images"`
	Content     locale.Structured `bun:"content,type:text" json:"content"`
	Metadata    locale.Structured `bun:"metadata,type:text" json:"metadata"`
	IsActive    bool              `bun:"is_active,notnull,default:true" json:"is_active"`
	OrderIndex  int               `bun:"order_index,notnull,default:0" json:"order_index"`
	CreatedAt   time.Time         `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Persisted reports whether the section has been saved at least once.
// Synthesized defaults carry a nil ID until their first save.
func (s *Section) Persisted() bool {
	return s != nil && s.ID != uuid.Nil
}

// SaveSectionRequest captures a full section payload for an upsert keyed on
// (page_key, section_key). Editors replace the record wholesale; there is no
// field-level patching.
type SaveSectionRequest struct {
	PageKey     string            `json:"page_key"`
	SectionKey  string            `json:"section_key"`
	Title       locale.Text       `json:"title"`
	Subtitle    locale.Text       `json:"subtitle"`
	Description locale.Text       `json:"description"`
	ButtonText  locale.Text       `json:"button_text"`
	ButtonLink  *string           `json:"button_link"`
	Images      []string          `json:"images"`
	Content     locale.Structured `json:"content"`
	Metadata    locale.Structured `json:"metadata"`
	IsActive    *bool             `json:"is_active"`
	OrderIndex  *int              `json:"order_index"`
}
