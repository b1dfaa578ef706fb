package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/pkg/interfaces"
)

// Service exposes the public-site catalog: departments, laboratories,
// courses, events, and news articles. Admin saves replace records wholesale;
// public reads filter on activation and, for news, publication.
type Service interface {
	SaveDepartment(ctx context.Context, req SaveDepartmentRequest) (*Department, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
	PublicDepartments(ctx context.Context) ([]*Department, error)
	GetDepartmentBySlug(ctx context.Context, slug string) (*Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error

	SaveLaboratory(ctx context.Context, req SaveLaboratoryRequest) (*Laboratory, error)
	ListLaboratories(ctx context.Context, departmentID *uuid.UUID) ([]*Laboratory, error)
	PublicLaboratories(ctx context.Context, departmentID *uuid.UUID) ([]*Laboratory, error)
	DeleteLaboratory(ctx context.Context, id uuid.UUID) error

	SaveCourse(ctx context.Context, req SaveCourseRequest) (*Course, error)
	ListCourses(ctx context.Context, departmentID *uuid.UUID) ([]*Course, error)
	PublicCourses(ctx context.Context, departmentID *uuid.UUID) ([]*Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error

	SaveEvent(ctx context.Context, req SaveEventRequest) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpcomingEvents(ctx context.Context) ([]*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	SaveArticle(ctx context.Context, req SaveArticleRequest) (*Article, error)
	ListArticles(ctx context.Context) ([]*Article, error)
	PublishedArticles(ctx context.Context) ([]*Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records and to decide event
// and publication windows.
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

// WithRenderer overrides the markdown renderer used for article bodies.
func WithRenderer(renderer Renderer) ServiceOption {
	return func(s *service) {
		if renderer != nil {
			s.render = renderer
		}
	}
}

// WithIDGenerator overrides how new records get their identity.
func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

type service struct {
	stores Stores
	now    func() time.Time
	newID  func() uuid.UUID
	render Renderer
	log    interfaces.Logger
}

// NewService constructs a catalog service backed by the given stores.
func NewService(stores Stores, opts ...ServiceOption) Service {
	s := &service{
		stores: stores,
		now:    time.Now,
		newID:  uuid.New,
		render: NewGoldmarkRenderer(),
		log:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// claimSlug verifies the slug is free or already owned by the record being
// saved.
func claimSlug[T any](ctx context.Context, store Store[T], slug string, owner uuid.UUID, id func(*T) uuid.UUID) error {
	existing, err := store.GetBySlug(ctx, slug)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if id(existing) != owner {
		return fmt.Errorf("%w: %q", ErrSlugTaken, slug)
	}
	return nil
}

// prepare resolves identity and timestamps shared by every family's save.
// It returns the record ID, the stored row when updating, and the stamp.
func prepare[T any](ctx context.Context, s *service, store Store[T], reqID uuid.UUID) (uuid.UUID, *T, time.Time, error) {
	now := s.now()
	if reqID == uuid.Nil {
		return s.newID(), nil, now, nil
	}
	existing, err := store.GetByID(ctx, reqID)
	if err != nil {
		return uuid.Nil, nil, now, err
	}
	return reqID, existing, now, nil
}

func persist[T any](ctx context.Context, store Store[T], record *T, isNew bool) (*T, error) {
	if isNew {
		return store.Create(ctx, record)
	}
	return store.Update(ctx, record)
}

func (s *service) SaveDepartment(ctx context.Context, req SaveDepartmentRequest) (*Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(req.Slug, req.Name.EN, req.Name.AR)
	if err != nil {
		return nil, err
	}

	id, existing, now, err := prepare(ctx, s, s.stores.Departments, req.ID)
	if err != nil {
		return nil, err
	}
	if err := claimSlug(ctx, s.stores.Departments, slug, id, func(r *Department) uuid.UUID { return r.ID }); err != nil {
		return nil, err
	}

	record := &Department{
		ID:          id,
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		OrderIndex:  req.OrderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return persist(ctx, s.stores.Departments, record, existing == nil)
}

func (s *service) ListDepartments(ctx context.Context) ([]*Department, error) {
	return s.stores.Departments.List(ctx, ListFilter{})
}

func (s *service) PublicDepartments(ctx context.Context) ([]*Department, error) {
	return s.stores.Departments.List(ctx, ListFilter{ActiveOnly: true})
}

func (s *service) GetDepartmentBySlug(ctx context.Context, slug string) (*Department, error) {
	return s.stores.Departments.GetBySlug(ctx, slug)
}

func (s *service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	return s.stores.Departments.Delete(ctx, id)
}

func (s *service) SaveLaboratory(ctx context.Context, req SaveLaboratoryRequest) (*Laboratory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(req.Slug, req.Name.EN, req.Name.AR)
	if err != nil {
		return nil, err
	}

	id, existing, now, err := prepare(ctx, s, s.stores.Laboratories, req.ID)
	if err != nil {
		return nil, err
	}
	if err := claimSlug(ctx, s.stores.Laboratories, slug, id, func(r *Laboratory) uuid.UUID { return r.ID }); err != nil {
		return nil, err
	}

	record := &Laboratory{
		ID:           id,
		DepartmentID: req.DepartmentID,
		Slug:         slug,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IsActive:     true,
		OrderIndex:   req.OrderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return persist(ctx, s.stores.Laboratories, record, existing == nil)
}

func (s *service) ListLaboratories(ctx context.Context, departmentID *uuid.UUID) ([]*Laboratory, error) {
	return s.stores.Laboratories.List(ctx, ListFilter{DepartmentID: departmentID})
}

func (s *service) PublicLaboratories(ctx context.Context, departmentID *uuid.UUID) ([]*Laboratory, error) {
	return s.stores.Laboratories.List(ctx, ListFilter{ActiveOnly: true, DepartmentID: departmentID})
}

func (s *service) DeleteLaboratory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	return s.stores.Laboratories.Delete(ctx, id)
}

func (s *service) SaveCourse(ctx context.Context, req SaveCourseRequest) (*Course, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(req.Slug, req.Name.EN, req.Name.AR)
	if err != nil {
		return nil, err
	}

	id, existing, now, err := prepare(ctx, s, s.stores.Courses, req.ID)
	if err != nil {
		return nil, err
	}
	if err := claimSlug(ctx, s.stores.Courses, slug, id, func(r *Course) uuid.UUID { return r.ID }); err != nil {
		return nil, err
	}

	record := &Course{
		ID:           id,
		DepartmentID: req.DepartmentID,
		Slug:         slug,
		Name:         req.Name,
		Description:  req.Description,
		Credits:      req.Credits,
		IsActive:     true,
		OrderIndex:   req.OrderIndex,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return persist(ctx, s.stores.Courses, record, existing == nil)
}

func (s *service) ListCourses(ctx context.Context, departmentID *uuid.UUID) ([]*Course, error) {
	return s.stores.Courses.List(ctx, ListFilter{DepartmentID: departmentID})
}

func (s *service) PublicCourses(ctx context.Context, departmentID *uuid.UUID) ([]*Course, error) {
	return s.stores.Courses.List(ctx, ListFilter{ActiveOnly: true, DepartmentID: departmentID})
}

func (s *service) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	return s.stores.Courses.Delete(ctx, id)
}

func (s *service) SaveEvent(ctx context.Context, req SaveEventRequest) (*Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(req.Slug, req.Title.EN, req.Title.AR)
	if err != nil {
		return nil, err
	}

	id, existing, now, err := prepare(ctx, s, s.stores.Events, req.ID)
	if err != nil {
		return nil, err
	}
	if err := claimSlug(ctx, s.stores.Events, slug, id, func(r *Event) uuid.UUID { return r.ID }); err != nil {
		return nil, err
	}

	record := &Event{
		ID:          id,
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return persist(ctx, s.stores.Events, record, existing == nil)
}

func (s *service) ListEvents(ctx context.Context) ([]*Event, error) {
	return s.stores.Events.List(ctx, ListFilter{})
}

func (s *service) UpcomingEvents(ctx context.Context) ([]*Event, error) {
	from := s.now()
	return s.stores.Events.List(ctx, ListFilter{ActiveOnly: true, From: &from})
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	return s.stores.Events.Delete(ctx, id)
}

func (s *service) SaveArticle(ctx context.Context, req SaveArticleRequest) (*Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(req.Slug, req.Title.EN, req.Title.AR)
	if err != nil {
		return nil, err
	}

	id, existing, now, err := prepare(ctx, s, s.stores.Articles, req.ID)
	if err != nil {
		return nil, err
	}
	if err := claimSlug(ctx, s.stores.Articles, slug, id, func(r *Article) uuid.UUID { return r.ID }); err != nil {
		return nil, err
	}

	record := &Article{
		ID:          id,
		Slug:        slug,
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		Tags:        req.Tags,
		PublishedAt: req.PublishedAt,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.IsActive = existing.IsActive
	}
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	return persist(ctx, s.stores.Articles, record, existing == nil)
}

func (s *service) ListArticles(ctx context.Context) ([]*Article, error) {
	return s.stores.Articles.List(ctx, ListFilter{})
}

// PublishedArticles returns the news feed: active articles whose publication
// time has passed, newest first. Bodies stay unrendered in list responses.
func (s *service) PublishedArticles(ctx context.Context) ([]*Article, error) {
	by := s.now()
	return s.stores.Articles.List(ctx, ListFilter{ActiveOnly: true, PublishedBy: &by})
}

// GetArticleBySlug returns one article with its markdown body rendered to
// HTML. A render failure is logged and returns the article with an empty
// RenderedBody rather than failing the read.
func (s *service) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	record, err := s.stores.Articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	rendered, err := s.render.Render(record.Body)
	if err != nil {
		s.log.Warn("article body failed to render", "slug", slug, "error", err.Error())
		return record, nil
	}
	record.RenderedBody = rendered
	return record, nil
}

func (s *service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidID
	}
	return s.stores.Articles.Delete(ctx, id)
}
