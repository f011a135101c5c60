package dto

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeCreate is the input for creating an employee account.
type EmployeeCreate struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Role     string `json:"role" validate:"required"`
}

// EmployeeUpdate is an explicit patch: nil fields are left untouched, set
// fields are applied one by one to the stored record.
type EmployeeUpdate struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// EmployeeRead is the read-optimized view of an employee. The password hash
// is never exposed.
type EmployeeRead struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordReset is the input for resetting an employee's password.
type PasswordReset struct {
	Password string `json:"password" validate:"required,min=4,max=72"`
}
