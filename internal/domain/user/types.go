package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role identifies what an authenticated actor is allowed to do with a
// booking. Identity issuance itself lives outside this service; only the
// role claim carried by the access token is modeled here.
type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
