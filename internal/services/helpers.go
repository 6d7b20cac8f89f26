package services

import (
	"errors"
	"fmt"

	"job-board-api/internal/storage"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	case errors.Is(err, storage.ErrDuplicateEmail):
		return ErrEmailTaken
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	case errors.Is(err, storage.ErrForeignKey):
		return fmt.Errorf("%w: %s references a missing record", ErrNotFound, operation)
	}
	return fmt.Errorf("internal error during %s: %w", operation, err)
}
