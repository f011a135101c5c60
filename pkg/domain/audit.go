package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit action tags. The audit log is append-only; entries are never
// mutated or deleted.
const (
	ActionTransferCreate = "transfer.create"
	ActionTransferCancel = "transfer.cancel"
	ActionTransferDelete = "transfer.delete"

	ActionEmployeeCreate        = "employee.create"
	ActionEmployeeUpdate        = "employee.update"
	ActionEmployeeDelete        = "employee.delete"
	ActionEmployeeToggle        = "employee.toggle"
	ActionEmployeePasswordReset = "employee.password_reset"

	ActionLogin = "auth.login"
)

// AuditEntry records a state-changing action and its actor.
type AuditEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuditEntry creates an audit entry for the given actor and action.
func NewAuditEntry(userID uuid.UUID, action, details string) *AuditEntry {
	return &AuditEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
}
