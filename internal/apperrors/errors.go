package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingRequiredField indicates that a required input was left blank.
var ErrMissingRequiredField = errors.New("missing required field")

// ErrInvalidNumericValue indicates a non-numeric or non-positive amount or rate.
var ErrInvalidNumericValue = errors.New("invalid numeric value")

// ErrMissingConditionalField indicates that a field required by another field's value was left blank.
var ErrMissingConditionalField = errors.New("missing conditional field")

// ErrInvalidTransition indicates that an operation is not allowed in the session's current step.
var ErrInvalidTransition = errors.New("operation not allowed in current step")

// FieldError is a user-facing validation failure tied to one field and, for
// exchange rows, one row. It matches both its Kind and ErrValidation with errors.Is.
type FieldError struct {
	Kind    error
	Field   string
	Row     int // 1-based, 0 when not row specific
	Message string
}

func (e *FieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s (row %d, %s): %s", e.Kind, e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
}

func (e *FieldError) Unwrap() []error {
	return []error{e.Kind, ErrValidation}
}

// KindName returns a stable identifier for the error kind, used in API responses.
func (e *FieldError) KindName() string {
	switch e.Kind {
	case ErrMissingRequiredField:
		return "MissingRequiredField"
	case ErrInvalidNumericValue:
		return "InvalidNumericValue"
	case ErrMissingConditionalField:
		return "MissingConditionalField"
	default:
		return "Validation"
	}
}

// NewFieldError builds a FieldError that is not tied to an exchange row.
func NewFieldError(kind error, field, message string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Message: message}
}

// NewRowError builds a FieldError for the given 1-based exchange row.
func NewRowError(kind error, row int, field, message string) *FieldError {
	return &FieldError{Kind: kind, Field: field, Row: row, Message: message}
}

// AsFieldError extracts a FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
