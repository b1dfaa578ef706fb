package sliders

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/alqalam/campus-cms/locale"
)

// MediaType selects which media column a slide renders from.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether the value is one of the known media types.
func (m MediaType) Valid() bool {
	return m == MediaImage || m == MediaVideo
}

// Stat is one value/label pair rendered inside a slide. Stats have no
// identity of their own; they are addressed by position.
type Stat struct {
	Value string      `json:"value"`
	Label locale.Text `json:"label"`
}

// Slider is a hero carousel slide. Unlike page sections, sliders carry their
// own identity and support hard delete.
type Slider struct {
	bun.BaseModel `bun:"table:hero_sliders,alias:hs"`

	ID          uuid.UUID         `bun:",pk,type:uuid" json:"id"`
	Title       locale.Text       `bun:"title,type:text" json:"title"`
	Subtitle    locale.Text       `bun:"subtitle,type:text" json:"subtitle"`
	Description locale.Text       `bun:"description,type:text" json:"description"`
	Badge       locale.Text       `bun:"badge,type:text" json:"badge"`
	Icon        string            `bun:"icon" json:"icon"`
	MediaType   MediaType         `bun:"media_type,notnull" json:"media_type"`
	ImageURL    string            `bun:"image_url" json:"image_url"`
	VideoURL    string            `bun:"video_url" json:"video_url"`
	CTA         locale.Text       `bun:"cta,type:text" json:"cta"`
	CTALink     string            `bun:"cta_link" json:"cta_link"`
	Stats       []Stat            `bun:"stats,type:jsonb" json:"stats"`
	Metadata    locale.Structured `bun:"metadata,type:text" json:"metadata"`
	IsActive    bool              `bun:"is_active,notnull,default:true" json:"is_active"`
	OrderIndex  int               `bun:"order_index,notnull,default:0" json:"order_index"`
	CreatedAt   time.Time         `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time         `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// CreateSliderRequest carries a new slide. Media type defaults to image when
// omitted; stats default to an empty list.
type CreateSliderRequest struct {
	Title       locale.Text       `json:"title"`
	Subtitle    locale.Text       `json:"subtitle"`
	Description locale.Text       `json:"description"`
	Badge       locale.Text       `json:"badge"`
	Icon        string            `json:"icon"`
	MediaType   MediaType         `json:"media_type"`
	ImageURL    string            `json:"image_url"`
	VideoURL    string            `json:"video_url"`
	CTA         locale.Text       `json:"cta"`
	CTALink     string            `json:"cta_link"`
	Stats       []Stat            `json:"stats"`
	Metadata    locale.Structured `json:"metadata"`
	IsActive    *bool             `json:"is_active"`
	OrderIndex  int               `json:"order_index"`
}

// UpdateSliderRequest replaces a slide wholesale, matching the editor's
// save-the-whole-form contract. There is no field-level patching.
type UpdateSliderRequest struct {
	ID uuid.UUID `json:"id"`
	CreateSliderRequest
}
