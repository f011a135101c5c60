package domain

import (
	"strings"
	"time"

	"github.com/geldtransfer/backoffice/pkg/utils"
	"github.com/google/uuid"
)

// Role is an employee's privilege level, ordered owner > admin > manager >
// mitarbeiter. Owner implicitly satisfies any role check (see Session.HasRole).
type Role string

const (
	RoleOwner       Role = "owner"
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleMitarbeiter Role = "mitarbeiter"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleManager, RoleMitarbeiter:
		return Role(s), nil
	}
	return "", NewValidationError("role", "must be one of owner, admin, manager, mitarbeiter")
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string { return string(r) }

// Minimum lengths for user fields. The 4-character password floor matches
// the documented demo credentials and is kept for compatibility.
const (
	MinUsernameLen = 3
	MinNameLen     = 2
	MinPasswordLen = 4
)

// User is an employee account. Users are hard-deleted (unlike transfers),
// but deletion is restricted while any transfer still references them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates an active User with a hashed password. All fields are
// trimmed and validated before hashing.
func NewUser(username, name, password string, role Role, email *string) (*User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if len(username) < MinUsernameLen {
		return nil, NewValidationError("username", "must be at least 3 characters")
	}
	if len(name) < MinNameLen {
		return nil, NewValidationError("name", "must be at least 2 characters")
	}
	if len(password) < MinPasswordLen {
		return nil, NewValidationError("password", "must be at least 4 characters")
	}
	if !role.Valid() {
		return nil, NewValidationError("role", "unknown role")
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else if !utils.IsEmail(trimmed) {
			return nil, NewValidationError("email", "invalid email address")
		} else {
			email = &trimmed
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
