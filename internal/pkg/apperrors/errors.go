package apperrors

import (
	"errors"
	"fmt"
)

// Core error taxonomy. Every failure surfaced by the access layer wraps one
// of these sentinels so callers can classify with errors.Is.
var (
	// ErrAuthenticationRequired indicates no session where one is mandatory.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrPermissionDenied indicates the policy evaluator returned Deny.
	// Deliberately carries no detail about the target record.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidationFailed indicates missing/malformed input or an invariant
	// violation. Use NewValidationError to name the offending field.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound indicates a referenced record is absent.
	ErrNotFound = errors.New("resource not found")

	// ErrStoreUnavailable indicates a transport or infrastructure failure
	// from the database. Never retried here; surfaced as-is.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Authentication/session errors consumed by the identity provider.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
)

// Resource-specific conflicts. All wrap ErrValidationFailed through
// NewValidationError at the service boundary; these exist so repositories
// can report constraint hits without knowing field names.
var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists")
	ErrCourseCodeAlreadyExists = errors.New("course with this code already exists")
	ErrAlreadyEnrolled         = errors.New("student is already enrolled in this course")
)

// ValidationError names the field that failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidationFailed) hold for every
// ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewNotFoundError creates a NotFound error with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// NewStoreError wraps an infrastructure failure from the database so the
// middleware can map it to a store-unavailable response.
func NewStoreError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
