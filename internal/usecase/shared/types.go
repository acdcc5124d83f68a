package shared

import (
	"stayhub/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a usecase, as established by the
// auth middleware. Authorization decisions compare it to the booking's
// guest and host before any state guard runs.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
