// Package campus assembles the localized content services behind a single
// runtime façade: bilingual page sections, the hero slider carousel, the
// academic catalog, and the HTTP surface that serves them.
package campus

import (
	cache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/internal/httpapi"
	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/internal/urls"
	"github.com/alqalam/campus-cms/pkg/interfaces"
	"github.com/alqalam/campus-cms/sections"
	"github.com/alqalam/campus-cms/sliders"
)

// SectionService exports the page-section service contract for consumers of
// the campus package.
type SectionService = sections.Service

// SliderService exports the hero slider service contract.
type SliderService = sliders.Service

// CatalogService exports the academic catalog service contract.
type CatalogService = catalog.Service

// Module is the top level runtime façade. Without a database it runs on
// in-memory repositories, which is how the tests and the examples use it.
type Module struct {
	cfg Config

	sections sections.Service
	sliders  sliders.Service
	catalog  catalog.Service
	urls     *urls.Resolver
	provider interfaces.LoggerProvider
}

type moduleDeps struct {
	db            *bun.DB
	provider      interfaces.LoggerProvider
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer

	sectionRepo sections.Repository
	sliderRepo  sliders.Repository
	stores      *catalog.Stores
}

// Option overrides a module dependency at construction time.
type Option func(*moduleDeps)

// WithBunDB switches the module from in-memory repositories to bun-backed
// storage on the given database.
func WithBunDB(db *bun.DB) Option {
	return func(d *moduleDeps) {
		d.db = db
	}
}

// WithLoggerProvider supplies named loggers for every module namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(d *moduleDeps) {
		d.provider = provider
	}
}

// WithCache enables read-through caching on the slider and catalog
// repositories. It has no effect without WithBunDB.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(d *moduleDeps) {
		d.cacheService = service
		d.keySerializer = serializer
	}
}

// WithSectionRepository overrides the page-section repository.
func WithSectionRepository(repo sections.Repository) Option {
	return func(d *moduleDeps) {
		d.sectionRepo = repo
	}
}

// WithSliderRepository overrides the hero slider repository.
func WithSliderRepository(repo sliders.Repository) Option {
	return func(d *moduleDeps) {
		d.sliderRepo = repo
	}
}

// WithCatalogStores overrides the catalog stores.
func WithCatalogStores(stores catalog.Stores) Option {
	return func(d *moduleDeps) {
		s := stores
		d.stores = &s
	}
}

// New constructs a campus module from the configuration plus optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &moduleDeps{}
	for _, opt := range opts {
		opt(deps)
	}

	sectionRepo := deps.sectionRepo
	if sectionRepo == nil {
		if deps.db != nil {
			sectionRepo = sections.NewBunSectionRepository(deps.db)
		} else {
			sectionRepo = sections.NewMemorySectionRepository()
		}
	}

	sliderRepo := deps.sliderRepo
	if sliderRepo == nil {
		if deps.db != nil {
			sliderRepo = sliders.NewBunSliderRepositoryWithCache(deps.db, deps.cacheService, deps.keySerializer)
		} else {
			sliderRepo = sliders.NewMemorySliderRepository()
		}
	}

	var stores catalog.Stores
	switch {
	case deps.stores != nil:
		stores = *deps.stores
	case deps.db != nil:
		stores = catalog.NewBunStoresWithCache(deps.db, deps.cacheService, deps.keySerializer)
	default:
		stores = catalog.NewMemoryStores()
	}

	m := &Module{
		cfg:      cfg,
		sections: sections.NewService(sectionRepo,
			sections.WithLogger(logging.SectionsLogger(deps.provider)),
			sections.WithSchemaAdvisor(sections.MustNewSchemaAdvisor()),
		),
		sliders:  sliders.NewService(sliderRepo, sliders.WithLogger(logging.SlidersLogger(deps.provider))),
		catalog:  catalog.NewService(stores, catalog.WithLogger(logging.CatalogLogger(deps.provider))),
		urls:     urls.NewResolver(cfg.PublicBaseURL),
	}

	m.provider = deps.provider
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Sections returns the page-section content service.
func (m *Module) Sections() SectionService {
	return m.sections
}

// Sliders returns the hero slider service.
func (m *Module) Sliders() SliderService {
	return m.sliders
}

// Catalog returns the academic catalog service.
func (m *Module) Catalog() CatalogService {
	return m.catalog
}

// URLs returns the public URL resolver.
func (m *Module) URLs() *urls.Resolver {
	return m.urls
}

// HTTPServer builds the admin and public REST surface wired to the module
// services.
func (m *Module) HTTPServer(appName string) (*httpapi.Server, error) {
	return httpapi.NewServer(httpapi.Config{
		AppName:      appName,
		Environment:  m.cfg.Environment,
		JWTSecret:    m.cfg.HTTP.JWTSecret,
		ReadTimeout:  m.cfg.HTTP.ReadTimeout,
		WriteTimeout: m.cfg.HTTP.WriteTimeout,
	}, httpapi.Dependencies{
		Sections: m.sections,
		Sliders:  m.sliders,
		Catalog:  m.catalog,
		URLs:     m.urls,
		Logger:   logging.HTTPLogger(m.provider),
	})
}
