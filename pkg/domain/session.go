package domain

import "github.com/google/uuid"

// Session is the caller's identity for a single operation. It is built once
// per request from the verified token and passed explicitly into every
// service call; there is no ambient session state.
type Session struct {
	UserID uuid.UUID
	Role   Role
}

// Authenticated reports whether the session carries a user.
func (s Session) Authenticated() bool {
	return s.UserID != uuid.Nil
}

// HasRole decides whether the session may perform an operation allowed for
// the given roles. An owner satisfies any non-empty role set even when not
// listed; this superuser bypass is checked explicitly before the membership
// test and is intentional.
func (s Session) HasRole(roles ...Role) bool {
	if s.Role == "" {
		return false
	}
	if s.Role == RoleOwner && len(roles) > 0 {
		return true
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}
