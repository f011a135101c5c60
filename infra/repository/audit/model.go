package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/domain"
)

// AuditLog is the gorm model for the audit_logs table. Rows are insert-only.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"not null;size:50;index"`
	Details   string    `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"index"`
}

func mapModelToDomain(m *AuditLog) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Action:    m.Action,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}

func mapDomainToModel(e *domain.AuditEntry) *AuditLog {
	return &AuditLog{
		ID:        e.ID,
		UserID:    e.UserID,
		Action:    e.Action,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}
