package services

import (
	"errors"
	"fmt"
)

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrLogoutUnavailable  = errors.New("logout unavailable: token revocation is not configured")
)

// Domain conflicts. Each wraps ErrConflict.
var (
	ErrEmailTaken     = fmt.Errorf("%w: user with this email already exists", ErrConflict)
	ErrAlreadyApplied = fmt.Errorf("%w: you have already applied for this job", ErrConflict)
	ErrJobClosed      = fmt.Errorf("%w: this job is no longer accepting applications", ErrConflict)
)

// ValidationError reports a rejected input field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
