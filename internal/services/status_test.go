package services

import (
	"testing"

	"job-board-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusPolicy_Flat(t *testing.T) {
	policy := StatusPolicy{}
	for _, from := range models.ApplicationStatuses {
		for _, to := range models.ApplicationStatuses {
			assert.NoError(t, policy.Check(from, to), "%s -> %s", from, to)
		}
	}
	assert.ErrorIs(t, policy.Check(models.ApplicationStatusApplied, "pending"), ErrValidation)
}

func TestStatusPolicy_Strict(t *testing.T) {
	policy := StatusPolicy{Strict: true}

	allowed := [][2]models.ApplicationStatus{
		{models.ApplicationStatusApplied, models.ApplicationStatusReviewed},
		{models.ApplicationStatusApplied, models.ApplicationStatusHired},
		{models.ApplicationStatusReviewed, models.ApplicationStatusInterviewed},
		{models.ApplicationStatusInterviewed, models.ApplicationStatusRejected},
		{models.ApplicationStatusHired, models.ApplicationStatusHired},
	}
	for _, tr := range allowed {
		assert.NoError(t, policy.Check(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]models.ApplicationStatus{
		{models.ApplicationStatusReviewed, models.ApplicationStatusApplied},
		{models.ApplicationStatusInterviewed, models.ApplicationStatusReviewed},
		{models.ApplicationStatusRejected, models.ApplicationStatusHired},
		{models.ApplicationStatusHired, models.ApplicationStatusApplied},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, policy.Check(tr[0], tr[1]), ErrInvalidTransition, "%s -> %s", tr[0], tr[1])
	}
}

func TestStatusPolicy_TerminalStatesHaveNoForwardMoves(t *testing.T) {
	for _, s := range models.ApplicationStatuses {
		if s.IsTerminal() {
			assert.Empty(t, forwardTransitions[s], s)
		} else {
			assert.NotEmpty(t, forwardTransitions[s], s)
		}
	}
}
