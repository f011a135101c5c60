package repository

import (
	"context"
	"time"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// TransferPatch carries the fields set by a status transition.
type TransferPatch struct {
	Status        domain.TransferStatus
	CancelReason  *string
	CancelledAt   *time.Time
	CancelledByID *uuid.UUID
}

// TransferRepository defines data access for money transfers.
type TransferRepository interface {
	Create(ctx context.Context, t *domain.MoneyTransfer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.MoneyTransfer, error)
	// List returns non-deleted transfers matching the filter, newest first.
	// The deleted exclusion is layered under any caller-supplied status.
	List(ctx context.Context, f dto.TransferFilter) ([]*domain.MoneyTransfer, error)
	// ListForTotals returns posted and cancelled transfers matching the
	// totals filter.
	ListForTotals(ctx context.Context, f dto.TotalsFilter) ([]*domain.MoneyTransfer, error)
	// UpdateStatusIf applies the patch only when the current status equals
	// from, as a single conditional update, and reports the number of rows
	// changed. Zero rows on an existing record means a lost status race.
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from domain.TransferStatus, patch TransferPatch) (int64, error)
	// MarkDeleted sets status=deleted unconditionally. Records are retained
	// in storage for audit.
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	// ReferencesUser reports whether any transfer references the user as
	// creator or canceller.
	ReferencesUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UserRepository defines data access for employee accounts.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByRole(ctx context.Context, role domain.Role) (bool, error)
}

// AuditRepository defines append-only access to the audit log.
type AuditRepository interface {
	Create(ctx context.Context, e *domain.AuditEntry) error
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditEntry, error)
}
