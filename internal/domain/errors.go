package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// Check-in and calendar conditions. All of them are expected, user-facing
// outcomes; callers match them with errors.Is.
var (
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrHabitInactive       = errors.New("habit is inactive")
	ErrBeforeHabitStart    = errors.New("date is before habit start")
	ErrDuplicateCheckIn    = errors.New("duplicate check-in")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DateError reports a day text that could not be parsed.
// Kind is ErrInvalidDateFormat or ErrInvalidCalendarDate.
type DateError struct {
	Input string
	Kind  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Input)
}

func (e *DateError) Unwrap() []error { return []error{e.Kind, ErrValidation} }

// BeforeStartError is returned when a check-in day precedes the habit's start date.
type BeforeStartError struct {
	StartDate string // YYYY-MM-DD
}

func (e *BeforeStartError) Error() string {
	return fmt.Sprintf("%s %s", ErrBeforeHabitStart, e.StartDate)
}

func (e *BeforeStartError) Unwrap() []error { return []error{ErrBeforeHabitStart, ErrValidation} }

// DuplicateCheckInError is returned when a check-in already exists for the habit and day.
type DuplicateCheckInError struct {
	Date string // YYYY-MM-DD
}

func (e *DuplicateCheckInError) Error() string {
	return fmt.Sprintf("%s on %s", ErrDuplicateCheckIn, e.Date)
}

func (e *DuplicateCheckInError) Unwrap() []error { return []error{ErrDuplicateCheckIn, ErrConflict} }
