package services

import (
	"fmt"

	"job-board-api/internal/models"
)

// requireRole passes when the actor holds one of roles.
func requireRole(actor models.Actor, roles ...models.Role) error {
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q may not perform this action", ErrForbidden, actor.Role)
}

// requireOwner is the ownership predicate shared by every resource: it passes
// when the actor is one of the resource's owners.
func requireOwner(actor models.Actor, ownerIDs ...int64) error {
	for _, id := range ownerIDs {
		if id != 0 && actor.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: user %d does not own this resource", ErrForbidden, actor.ID)
}
