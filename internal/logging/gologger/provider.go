// Package gologger adapts go-logger to the campus logging contracts.
package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/alqalam/campus-cms/internal/logging"
	"github.com/alqalam/campus-cms/pkg/interfaces"
)

// Config selects the output shape of the go-logger backend. An empty level
// keeps the library default; an empty format means console, which is what
// local development wants.
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

var levelNames = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// Provider hands out named child loggers satisfying interfaces.LoggerProvider.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the provider that campus.WithLoggerProvider consumes.
func NewProvider(cfg Config) (*Provider, error) {
	var options []glog.Option

	if name := strings.ToLower(strings.TrimSpace(cfg.Level)); name != "" {
		level, ok := levelNames[name]
		if !ok {
			return nil, fmt.Errorf("logging: unknown level %q", cfg.Level)
		}
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	return &Provider{root: glog.NewLogger(options...)}, nil
}

// GetLogger returns the child logger for a module namespace. An empty name
// returns the root logger.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &glogAdapter{inner: inner}
}

type glogAdapter struct {
	inner glog.Logger
}

func (l *glogAdapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *glogAdapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *glogAdapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *glogAdapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *glogAdapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *glogAdapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *glogAdapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return adapt(with.WithFields(copied))
	}
	if with, ok := l.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return adapt(with.With(pairs(fields)...))
	}
	return l
}

func (l *glogAdapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return adapt(l.inner.WithContext(ctx))
}

// pairs flattens a field map into sorted key/value arguments so output stays
// stable across runs.
func pairs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
