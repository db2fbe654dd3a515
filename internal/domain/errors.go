package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and repositories.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateSlug      = errors.New("slug already in use")
	ErrUnknownEvent       = errors.New("referenced event does not exist")
)

// Validation taxonomy. Every *ValidationError unwraps to exactly one of these.
var (
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrInvalidFormat        = errors.New("invalid format")
	ErrUniquenessViolation  = errors.New("uniqueness violation")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// ValidationKind classifies a rejected save.
type ValidationKind string

const (
	KindRequired             ValidationKind = "required"
	KindInvalidFormat        ValidationKind = "invalid_format"
	KindUniqueness           ValidationKind = "uniqueness"
	KindReferentialIntegrity ValidationKind = "referential_integrity"
)

func (k ValidationKind) sentinel() error {
	switch k {
	case KindRequired:
		return ErrRequiredFieldMissing
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindUniqueness:
		return ErrUniquenessViolation
	case KindReferentialIntegrity:
		return ErrReferentialIntegrity
	}
	return ErrInvalidInput
}

// ValidationError is a single field-level rule violation.
// swagger:model ValidationError
type ValidationError struct {
	Field   string         `json:"field"`
	Kind    ValidationKind `json:"kind"`
	Message string         `json:"message"`
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field string, kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// ValidationErrors is the set of violations that rejected a save. It is never
// returned empty; a nil error means the record passed.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Field returns the first violation on the named field, or nil.
func (errs ValidationErrors) Field(name string) *ValidationError {
	for _, e := range errs {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// Reject wraps a single violation as ValidationErrors.
func Reject(field string, kind ValidationKind, message string) ValidationErrors {
	return ValidationErrors{NewValidationError(field, kind, message)}
}
