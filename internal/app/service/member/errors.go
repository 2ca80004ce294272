package member

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a member id does not exist.
var ErrNotFound = errors.New("member not found")

// ValidationError reports a missing or invalid input field. It carries the
// field name so the presentation layer can attach the message to the right
// input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
