package logging

import (
	"maps"

	"github.com/alqalam/campus-cms/pkg/interfaces"
)

// WithFields returns a logger carrying the given structured fields. Loggers
// that do not implement the optional FieldsLogger extension are returned
// unchanged, as are nil loggers and empty field maps.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	maps.Copy(copied, fields)
	return fieldsLogger.WithFields(copied)
}
