package service

import "fmt"

// ValidationError reports a single-field constraint violation. Uniqueness
// and referential failures are not validation errors; those surface as the
// repository sentinels.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
