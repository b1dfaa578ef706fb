package interfaces

import "context"

// Logger defines the leveled logging contract expected by the campus runtime.
// It mirrors the interface exposed by github.com/goliatone/go-logger so host
// applications can plug that package in without additional adapters.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers, typically one child per module
// namespace. Returning the same instance for every name is also valid.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields. Implementations return a new logger that carries the fields on
// every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
