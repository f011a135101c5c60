package dto

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  EmployeeRead `json:"user"`
}

// AuditRead is the read view of an audit log entry.
type AuditRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
