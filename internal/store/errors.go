package store

import (
	"errors"
	"fmt"
)

// Error kinds surfaced at the store boundary. Callers distinguish them with
// errors.Is / errors.As instead of matching message text.
var (
	// ErrNotFound is returned when the referenced order id does not exist.
	ErrNotFound = errors.New("kayıt bulunamadı")

	// ErrInvalidField is returned when a single-field update targets a field
	// name outside the recognized set, before any mutation happens.
	ErrInvalidField = errors.New("geçersiz alan")
)

// ValidationError reports a rejected write, e.g. a missing required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
