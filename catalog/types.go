package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/alqalam/campus-cms/locale"
)

// Department is an academic department shown on the public site.
type Department struct {
	bun.BaseModel `bun:"table:departments,alias:dep"`

	ID          uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	Slug        string      `bun:"slug,notnull,unique" json:"slug"`
	Name        locale.Text `bun:"name,type:text" json:"name"`
	Description locale.Text `bun:"description,type:text" json:"description"`
	Icon        string      `bun:"icon" json:"icon"`
	ImageURL    string      `bun:"image_url" json:"image_url"`
	IsActive    bool        `bun:"is_active,notnull,default:true" json:"is_active"`
	OrderIndex  int         `bun:"order_index,notnull,default:0" json:"order_index"`
	CreatedAt   time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Laboratory is a research laboratory, optionally attached to a department.
type Laboratory struct {
	bun.BaseModel `bun:"table:laboratories,alias:lab"`

	ID           uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	DepartmentID *uuid.UUID  `bun:"department_id,type:uuid" json:"department_id,omitempty"`
	Slug         string      `bun:"slug,notnull,unique" json:"slug"`
	Name         locale.Text `bun:"name,type:text" json:"name"`
	Description  locale.Text `bun:"description,type:text" json:"description"`
	ImageURL     string      `bun:"image_url" json:"image_url"`
	IsActive     bool        `bun:"is_active,notnull,default:true" json:"is_active"`
	OrderIndex   int         `bun:"order_index,notnull,default:0" json:"order_index"`
	CreatedAt    time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Course is a taught course, optionally attached to a department.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:crs"`

	ID           uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	DepartmentID *uuid.UUID  `bun:"department_id,type:uuid" json:"department_id,omitempty"`
	Slug         string      `bun:"slug,notnull,unique" json:"slug"`
	Name         locale.Text `bun:"name,type:text" json:"name"`
	Description  locale.Text `bun:"description,type:text" json:"description"`
	Credits      int         `bun:"credits,notnull,default:0" json:"credits"`
	IsActive     bool        `bun:"is_active,notnull,default:true" json:"is_active"`
	OrderIndex   int         `bun:"order_index,notnull,default:0" json:"order_index"`
	CreatedAt    time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Event is a campus event with a time window.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:evt"`

	ID          uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	Slug        string      `bun:"slug,notnull,unique" json:"slug"`
	Title       locale.Text `bun:"title,type:text" json:"title"`
	Description locale.Text `bun:"description,type:text" json:"description"`
	Location    locale.Text `bun:"location,type:text" json:"location"`
	ImageURL    string      `bun:"image_url" json:"image_url"`
	StartsAt    time.Time   `bun:"starts_at,notnull" json:"starts_at"`
	EndsAt      time.Time   `bun:"ends_at,nullzero" json:"ends_at"`
	IsActive    bool        `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Article is a news article. The body is authored in markdown; RenderedBody
// is filled by the service on read and never persisted.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:art"`

	ID           uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	Slug         string      `bun:"slug,notnull,unique" json:"slug"`
	Title        locale.Text `bun:"title,type:text" json:"title"`
	Summary      locale.Text `bun:"summary,type:text" json:"summary"`
	Body         string      `bun:"body" json:"body"`
	RenderedBody string      `bun:"-" json:"rendered_body,omitempty"`
	ImageURL     string      `bun:"image_url" json:"image_url"`
	Author       string      `bun:"author" json:"author"`
	Tags         []string    `bun:"tags,type:jsonb" json:"tags"`
	PublishedAt  *time.Time  `bun:"published_at,nullzero" json:"published_at,omitempty"`
	IsActive     bool        `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt    time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Published reports whether the article is visible to the public site.
func (a *Article) Published(now time.Time) bool {
	return a != nil && a.IsActive && a.PublishedAt != nil && !a.PublishedAt.After(now)
}
