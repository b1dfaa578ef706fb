package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID marks an operation on a nil identifier.
	ErrInvalidID = errors.New("catalog: id is required")

	// ErrSlugTaken marks a save whose slug already belongs to another record
	// in the same family.
	ErrSlugTaken = errors.New("catalog: slug already in use")
)

// NotFoundError identifies the record an operation failed to locate.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
