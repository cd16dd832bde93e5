package shared

import (
	"creator-booking/internal/domain/user"
	"creator-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command or query.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) RequireRole(min user.Role) error {
	if a.ID == uuid.Nil || !a.Role.AtLeast(min) {
		return errs.ErrUnauthorized
	}
	return nil
}
