package storage

import "errors"

var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict (e.g., duplicate key)")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrForeignKey     = errors.New("referenced resource does not exist")

	// ErrRevocationUnavailable is returned by denylists that cannot record revocations.
	ErrRevocationUnavailable = errors.New("token revocation is not configured")
)
