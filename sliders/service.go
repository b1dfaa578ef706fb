package sliders

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/pkg/interfaces"
)

// Service exposes the hero carousel use cases. Sliders are the one entity in
// the module with full CRUD including hard delete.
type Service interface {
	Create(ctx context.Context, req CreateSliderRequest) (*Slider, error)
	Update(ctx context.Context, req UpdateSliderRequest) (*Slider, error)
	Get(ctx context.Context, id uuid.UUID) (*Slider, error)
	List(ctx context.Context) ([]*Slider, error)
	ListActive(ctx context.Context) ([]*Slider, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Validate rejects structurally invalid slides before any repository call.
func (r CreateSliderRequest) Validate() error {
	errs := validation.Errors{}

	if r.MediaType != "" && !r.MediaType.Valid() {
		errs["media_type"] = validation.NewError("campus.sliders.media_type_invalid", "media_type must be image or video")
	}
	if r.MediaType == MediaVideo && strings.TrimSpace(r.VideoURL) == "" {
		errs["video_url"] = validation.NewError("campus.sliders.video_url_required", "video_url is required for video slides")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate additionally requires an identity on updates.
func (r UpdateSliderRequest) Validate() error {
	err := r.CreateSliderRequest.Validate()
	if r.ID != uuid.Nil {
		return err
	}

	errs := validation.Errors{}
	if inner, ok := err.(validation.Errors); ok {
		errs = inner
	}
	errs["id"] = validation.NewError("campus.sliders.id_required", "id is required")
	return errs
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

// WithIDGenerator overrides how new slides get their identity.
func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// cacheInvalidator is implemented by cache-wrapped repositories.
type cacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

type service struct {
	repo  Repository
	now   func() time.Time
	newID func() uuid.UUID
	log   interfaces.Logger
}

// invalidateCache drops cached reads after a write so the public carousel
// never serves a stale slide. A cache failure is logged, not surfaced: the
// write itself has already committed.
func (s *service) invalidateCache(ctx context.Context) {
	invalidator, ok := s.repo.(cacheInvalidator)
	if !ok {
		return
	}
	if err := invalidator.InvalidateCache(ctx); err != nil {
		s.log.Warn("slider cache invalidation failed", "error", err.Error())
	}
}

// NewService constructs a slider service backed by the given repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.New,
		log:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateSliderRequest) (*Slider, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	record := recordFromRequest(req)
	record.ID = s.newID()
	record.CreatedAt = now
	record.UpdatedAt = now

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	s.log.Debug("hero slider created", "id", created.ID, "media_type", created.MediaType)
	return created, nil
}

// Update replaces the slide wholesale, keeping only identity and creation
// time from the stored row. Last write wins; there is no version check.
func (s *service) Update(ctx context.Context, req UpdateSliderRequest) (*Slider, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	record := recordFromRequest(req.CreateSliderRequest)
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Slider, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Slider, error) {
	return s.repo.List(ctx, false)
}

// ListActive returns the slides the public carousel renders, in order.
func (s *service) ListActive(ctx context.Context) ([]*Slider, error) {
	return s.repo.List(ctx, true)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.log.Debug("hero slider deleted", "id", id)
	return nil
}

func recordFromRequest(req CreateSliderRequest) *Slider {
	record := &Slider{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Badge:       req.Badge,
		Icon:        req.Icon,
		MediaType:   req.MediaType,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		CTA:         req.CTA,
		CTALink:     req.CTALink,
		Stats:       req.Stats,
		Metadata:    req.Metadata,
		IsActive:    true,
		OrderIndex:  req.OrderIndex,
	}
	if record.MediaType == "" {
		record.MediaType = MediaImage
	}
	if record.Stats == nil {
		record.Stats = []Stat{}
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return record
}
