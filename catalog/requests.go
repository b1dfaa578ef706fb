package catalog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/locale"
)

// Requests carry full entity payloads; updates replace the stored row
// wholesale, matching the editor's save-the-whole-form contract. Validation
// runs before any repository call so invalid input never reaches storage.

func requireName(errs validation.Errors, field string, text locale.Text, code string) validation.Errors {
	if text.IsZero() {
		errs[field] = validation.NewError(code, field+" is required in at least one locale")
	}
	return errs
}

func finish(errs validation.Errors) error {
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveDepartmentRequest creates or replaces a department. Slug is derived
// from the English name when omitted.
type SaveDepartmentRequest struct {
	ID          uuid.UUID   `json:"id"`
	Slug        string      `json:"slug"`
	Name        locale.Text `json:"name"`
	Description locale.Text `json:"description"`
	Icon        string      `json:"icon"`
	ImageURL    string      `json:"image_url"`
	IsActive    *bool       `json:"is_active"`
	OrderIndex  int         `json:"order_index"`
}

func (r SaveDepartmentRequest) Validate() error {
	errs := requireName(validation.Errors{}, "name", r.Name, "campus.catalog.department.name_required")
	return finish(errs)
}

// SaveLaboratoryRequest creates or replaces a laboratory.
type SaveLaboratoryRequest struct {
	ID           uuid.UUID   `json:"id"`
	DepartmentID *uuid.UUID  `json:"department_id"`
	Slug         string      `json:"slug"`
	Name         locale.Text `json:"name"`
	Description  locale.Text `json:"description"`
	ImageURL     string      `json:"image_url"`
	IsActive     *bool       `json:"is_active"`
	OrderIndex   int         `json:"order_index"`
}

func (r SaveLaboratoryRequest) Validate() error {
	errs := requireName(validation.Errors{}, "name", r.Name, "campus.catalog.laboratory.name_required")
	return finish(errs)
}

// SaveCourseRequest creates or replaces a course.
type SaveCourseRequest struct {
	ID           uuid.UUID   `json:"id"`
	DepartmentID *uuid.UUID  `json:"department_id"`
	Slug         string      `json:"slug"`
	Name         locale.Text `json:"name"`
	Description  locale.Text `json:"description"`
	Credits      int         `json:"credits"`
	IsActive     *bool       `json:"is_active"`
	OrderIndex   int         `json:"order_index"`
}

func (r SaveCourseRequest) Validate() error {
	errs := requireName(validation.Errors{}, "name", r.Name, "campus.catalog.course.name_required")
	if r.Credits < 0 {
		errs["credits"] = validation.NewError("campus.catalog.course.credits_negative", "credits must not be negative")
	}
	return finish(errs)
}

// SaveEventRequest creates or replaces an event.
type SaveEventRequest struct {
	ID          uuid.UUID   `json:"id"`
	Slug        string      `json:"slug"`
	Title       locale.Text `json:"title"`
	Description locale.Text `json:"description"`
	Location    locale.Text `json:"location"`
	ImageURL    string      `json:"image_url"`
	StartsAt    time.Time   `json:"starts_at"`
	EndsAt      time.Time   `json:"ends_at"`
	IsActive    *bool       `json:"is_active"`
}

func (r SaveEventRequest) Validate() error {
	errs := requireName(validation.Errors{}, "title", r.Title, "campus.catalog.event.title_required")
	if r.StartsAt.IsZero() {
		errs["starts_at"] = validation.NewError("campus.catalog.event.starts_at_required", "starts_at is required")
	}
	if !r.EndsAt.IsZero() && r.EndsAt.Before(r.StartsAt) {
		errs["ends_at"] = validation.NewError("campus.catalog.event.ends_before_start", "ends_at must not precede starts_at")
	}
	return finish(errs)
}

// SaveArticleRequest creates or replaces a news article.
type SaveArticleRequest struct {
	ID          uuid.UUID   `json:"id"`
	Slug        string      `json:"slug"`
	Title       locale.Text `json:"title"`
	Summary     locale.Text `json:"summary"`
	Body        string      `json:"body"`
	ImageURL    string      `json:"image_url"`
	Author      string      `json:"author"`
	Tags        []string    `json:"tags"`
	PublishedAt *time.Time  `json:"published_at"`
	IsActive    *bool       `json:"is_active"`
}

func (r SaveArticleRequest) Validate() error {
	errs := requireName(validation.Errors{}, "title", r.Title, "campus.catalog.article.title_required")
	return finish(errs)
}
