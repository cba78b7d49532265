// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrCourseUnknown indicates a course code has no loaded schedule table.
	ErrCourseUnknown = errors.New("unknown course code")

	// ErrUnavailable indicates an external collaborator (speech engine,
	// weather provider) is not available.
	ErrUnavailable = errors.New("collaborator unavailable")

	// ErrDataIntegrity indicates loaded schedule data is malformed
	// (for example a time range that does not split into start and end).
	ErrDataIntegrity = errors.New("data integrity fault")

	// ErrSessionActive indicates a conversation session is already running.
	ErrSessionActive = errors.New("session already active")

	// ErrTimeout indicates an operation timed out.
	ErrTimeout = errors.New("operation timed out")
)

// IntegrityError describes malformed stored data at the point of use.
// It wraps ErrDataIntegrity so callers can detect the category with
// errors.Is while keeping the offending value for diagnostics.
type IntegrityError struct {
	Field string
	Value string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("data integrity fault on %s: %q", e.Field, e.Value)
}

func (e *IntegrityError) Unwrap() error {
	return ErrDataIntegrity
}

// NewIntegrityError creates a new data integrity error.
func NewIntegrityError(field, value string) *IntegrityError {
	return &IntegrityError{Field: field, Value: value}
}
