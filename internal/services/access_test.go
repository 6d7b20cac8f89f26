package services

import (
	"testing"

	"job-board-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	employer := models.Actor{ID: 1, Role: models.RoleEmployer}
	seeker := models.Actor{ID: 2, Role: models.RoleJobSeeker}

	assert.NoError(t, requireRole(employer, models.RoleEmployer))
	assert.NoError(t, requireRole(seeker, models.RoleEmployer, models.RoleJobSeeker))
	assert.ErrorIs(t, requireRole(seeker, models.RoleEmployer), ErrForbidden)
	assert.ErrorIs(t, requireRole(models.Actor{ID: 3}, models.RoleJobSeeker), ErrForbidden)
}

func TestRequireOwner(t *testing.T) {
	actor := models.Actor{ID: 7, Role: models.RoleEmployer}

	assert.NoError(t, requireOwner(actor, 7))
	assert.NoError(t, requireOwner(actor, 3, 7))
	assert.ErrorIs(t, requireOwner(actor, 8), ErrForbidden)
	assert.ErrorIs(t, requireOwner(actor), ErrForbidden)

	// an unknown owner never matches, not even a zero actor
	assert.ErrorIs(t, requireOwner(models.Actor{}, 0), ErrForbidden)
}
