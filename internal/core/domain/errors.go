package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrInvalidCardID   = errors.New("invalid card id")
	ErrNoCardPresented = errors.New("no card presented")
	ErrInternal        = errors.New("internal server error")
)

// ValidationError reports a malformed field on card creation. The caller is
// expected to re-prompt the actor with the form state intact.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
