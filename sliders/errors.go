package sliders

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidID marks a lookup with a nil slider identifier.
var ErrInvalidID = errors.New("sliders: slider id is required")

// NotFoundError identifies the slide an operation failed to locate.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("sliders: slider %s not found", e.ID)
}
