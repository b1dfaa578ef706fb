package sections

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alqalam/campus-cms/internal/identity"
	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/pkg/interfaces"
)

// Service exposes the page-section content use cases. Sections are upserted
// by business key and archived via deactivation; there is no hard delete.
type Service interface {
	ListHome(ctx context.Context) ([]*Section, error)
	ListPage(ctx context.Context, pageKey string) ([]*Section, error)
	PageIndex(ctx context.Context, pageKey string) (map[string]*Section, error)
	GetOrDefault(ctx context.Context, pageKey, sectionKey string) (*Section, error)
	Save(ctx context.Context, req SaveSectionRequest) (*Section, error)
	Deactivate(ctx context.Context, pageKey, sectionKey string) (*Section, error)
}

var keyPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

// Validate rejects structurally invalid saves before any repository call.
func (r SaveSectionRequest) Validate() error {
	errs := validation.Errors{}

	key := strings.TrimSpace(r.SectionKey)
	if key == "" {
		errs["section_key"] = validation.NewError("campus.sections.save.section_key_required", "section_key is required")
	} else if !keyPattern.MatchString(key) {
		errs["section_key"] = validation.NewError("campus.sections.save.section_key_invalid", "section_key must be a lowercase url-safe key")
	}

	if page := strings.TrimSpace(r.PageKey); page != "" && !keyPattern.MatchString(page) {
		errs["page_key"] = validation.NewError("campus.sections.save.page_key_invalid", "page_key must be a lowercase url-safe key")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithSchemaAdvisor installs the advisory payload-shape checker. Findings are
// logged, never enforced.
func WithSchemaAdvisor(advisor *SchemaAdvisor) ServiceOption {
	return func(s *service) {
		s.advisor = advisor
	}
}

type service struct {
	repo    Repository
	now     func() time.Time
	log     interfaces.Logger
	advisor *SchemaAdvisor
}

// NewService constructs a section service backed by the given repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
		log:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListHome(ctx context.Context) ([]*Section, error) {
	return s.ListPage(ctx, PageHome)
}

func (s *service) ListPage(ctx context.Context, pageKey string) ([]*Section, error) {
	records, err := s.repo.ListByPage(ctx, normalizePage(pageKey))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*Section{}
	}
	for _, rec := range records {
		// Decode degradation is per record and non-fatal; surface it for
		// operators without failing the list.
		if rec.Content.Unparsed() {
			s.log.Warn("section content is not parseable JSON, carried verbatim",
				"page_key", rec.PageKey, "section_key", rec.SectionKey)
		}
	}
	return records, nil
}

func (s *service) PageIndex(ctx context.Context, pageKey string) (map[string]*Section, error) {
	records, err := s.ListPage(ctx, pageKey)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*Section, len(records))
	for _, rec := range records {
		index[rec.SectionKey] = rec
	}
	return index, nil
}

// GetOrDefault returns the stored section, or a renderable default when none
// exists so editors never branch on existence. The default is not persisted;
// it gains an identity on first save.
func (s *service) GetOrDefault(ctx context.Context, pageKey, sectionKey string) (*Section, error) {
	page := normalizePage(pageKey)
	record, err := s.repo.GetByKey(ctx, page, sectionKey)
	if err == nil {
		return record, nil
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	return &Section{
		PageKey:    page,
		SectionKey: sectionKey,
		Images:     []string{},
		IsActive:   true,
		OrderIndex: 0,
	}, nil
}

// Save upserts a section keyed on (page_key, section_key). The record ID is
// derived deterministically from the key, so concurrent first saves converge
// on one row. Last write wins; there is no version check.
func (s *service) Save(ctx context.Context, req SaveSectionRequest) (*Section, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page := normalizePage(req.PageKey)
	key := strings.TrimSpace(req.SectionKey)
	now := s.now()

	if s.advisor != nil {
		if err := s.advisor.Check(key, req.Content); err != nil {
			s.log.Warn("section content does not match the known shape for its key",
				"page_key", page, "section_key", key, "detail", err.Error())
		}
	}

	existing, err := s.repo.GetByKey(ctx, page, key)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		existing = nil
	}

	record := &Section{
		ID:          identity.SectionUUID(page, key),
		PageKey:     page,
		SectionKey:  key,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ButtonText:  req.ButtonText,
		ButtonLink:  req.ButtonLink,
		Images:      req.Images,
		Content:     req.Content,
		Metadata:    req.Metadata,
		IsActive:    true,
		OrderIndex:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if record.Images == nil {
		record.Images = []string{}
	}

	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
		record.OrderIndex = existing.OrderIndex
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	if req.OrderIndex != nil {
		record.OrderIndex = *req.OrderIndex
	}

	if existing == nil {
		return s.repo.Create(ctx, record)
	}
	return s.repo.Update(ctx, record)
}

// Deactivate hides a section from the public site while keeping it editable.
func (s *service) Deactivate(ctx context.Context, pageKey, sectionKey string) (*Section, error) {
	record, err := s.repo.GetByKey(ctx, normalizePage(pageKey), sectionKey)
	if err != nil {
		return nil, err
	}
	record.IsActive = false
	record.UpdatedAt = s.now()
	return s.repo.Update(ctx, record)
}

func normalizePage(pageKey string) string {
	page := strings.ToLower(strings.TrimSpace(pageKey))
	if page == "" {
		return PageHome
	}
	return page
}
