// Package httpapi exposes the admin and public REST surface over Fiber.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alqalam/campus-cms/catalog"
	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/internal/urls"
	"github.com/alqalam/campus-cms/pkg/interfaces"
	"github.com/alqalam/campus-cms/sections"
	"github.com/alqalam/campus-cms/sliders"
)

// EnvProduction suppresses internal error detail in responses.
const EnvProduction = "production"

// Config carries HTTP-layer settings.
type Config struct {
	AppName     string
	Environment string
	// JWTSecret signs admin bearer tokens (HS256). Empty disables the admin
	// surface entirely rather than leaving it open.
	JWTSecret    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Dependencies carries the services the handlers delegate to.
type Dependencies struct {
	Sections sections.Service
	Sliders  sliders.Service
	Catalog  catalog.Service
	URLs     *urls.Resolver
	Logger   interfaces.Logger
}

var errMissingServices = errors.New("httpapi: sections, sliders and catalog services are required")

// Server wraps the fiber app with its wiring.
type Server struct {
	app  *fiber.App
	cfg  Config
	deps Dependencies
	log  interfaces.Logger
}

// NewServer builds the fiber app with all routes registered.
func NewServer(cfg Config, deps Dependencies) (*Server, error) {
	if deps.Sections == nil || deps.Sliders == nil || deps.Catalog == nil {
		return nil, errMissingServices
	}
	log := deps.Logger
	if log == nil {
		log = logging.NoOp()
	}

	s := &Server{cfg: cfg, deps: deps, log: log}
	s.app = fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: s.handleError,
	})
	s.registerRoutes()
	return s, nil
}

// App exposes the fiber app, mainly for tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.Info("http server listening", "addr", addr, "env", s.cfg.Environment)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- s.app.Shutdown() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) production() bool {
	return s.cfg.Environment == EnvProduction
}
