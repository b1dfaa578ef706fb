package logging

import (
	"context"

	"github.com/alqalam/campus-cms/pkg/interfaces"
)

const (
	rootModule     = "campus"
	sectionsModule = "campus.sections"
	slidersModule  = "campus.sliders"
	catalogModule  = "campus.catalog"
	httpModule     = "campus.http"
	importerModule = "campus.importer"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SectionsLogger returns the logger namespace reserved for the page-section
// content service.
func SectionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sectionsModule)
}

// SlidersLogger returns the logger namespace reserved for the hero slider
// service.
func SlidersLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, slidersModule)
}

// CatalogLogger returns the logger namespace reserved for catalog services.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP layer.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// ImporterLogger returns the logger namespace reserved for markdown imports.
func ImporterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, importerModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
