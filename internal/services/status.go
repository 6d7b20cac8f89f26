package services

import (
	"fmt"

	"job-board-api/internal/models"
)

// StatusPolicy decides which application status changes are allowed.
// The zero value accepts any valid status from any state.
type StatusPolicy struct {
	Strict bool
}

// forwardTransitions is the lifecycle enforced in strict mode.
var forwardTransitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationStatusApplied: {
		models.ApplicationStatusReviewed,
		models.ApplicationStatusInterviewed,
		models.ApplicationStatusRejected,
		models.ApplicationStatusHired,
	},
	models.ApplicationStatusReviewed: {
		models.ApplicationStatusInterviewed,
		models.ApplicationStatusRejected,
		models.ApplicationStatusHired,
	},
	models.ApplicationStatusInterviewed: {
		models.ApplicationStatusRejected,
		models.ApplicationStatusHired,
	},
}

// Check returns ErrValidation for unknown statuses and, in strict mode,
// ErrInvalidTransition for moves outside the forward lifecycle.
func (p StatusPolicy) Check(from, to models.ApplicationStatus) error {
	if !to.IsValid() {
		return invalidField("status", fmt.Sprintf("unknown application status %q", to))
	}
	if !p.Strict || from == to {
		return nil
	}
	for _, next := range forwardTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, from, to)
}
