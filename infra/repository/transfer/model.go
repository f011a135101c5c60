package transfer

import (
	"time"

	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/currency"
	"github.com/geldtransfer/backoffice/pkg/domain"
)

// MoneyTransfer is the gorm model for the money_transfers table. Amounts
// are stored as integer cents.
type MoneyTransfer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider      string    `gorm:"not null;size:20;index"`
	Type          string    `gorm:"not null;size:20"`
	AmountCents   int64     `gorm:"not null"`
	FeeCents      int64     `gorm:"not null"`
	Reference     *string   `gorm:"size:100;index"`
	Status        string    `gorm:"not null;size:20;index"`
	CancelReason  *string   `gorm:"size:500"`
	CancelledAt   *time.Time
	CreatedByID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	CancelledByID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time
}

func mapModelToDomain(m *MoneyTransfer) *domain.MoneyTransfer {
	return &domain.MoneyTransfer{
		ID:            m.ID,
		Provider:      domain.Provider(m.Provider),
		Type:          domain.TransferType(m.Type),
		Amount:        currency.Amount(m.AmountCents),
		Fee:           currency.Amount(m.FeeCents),
		Reference:     m.Reference,
		Status:        domain.TransferStatus(m.Status),
		CancelReason:  m.CancelReason,
		CancelledAt:   m.CancelledAt,
		CreatedByID:   m.CreatedByID,
		CancelledByID: m.CancelledByID,
		CreatedAt:     m.CreatedAt,
	}
}

func mapDomainToModel(t *domain.MoneyTransfer) *MoneyTransfer {
	return &MoneyTransfer{
		ID:            t.ID,
		Provider:      string(t.Provider),
		Type:          string(t.Type),
		AmountCents:   t.Amount.Cents(),
		FeeCents:      t.Fee.Cents(),
		Reference:     t.Reference,
		Status:        string(t.Status),
		CancelReason:  t.CancelReason,
		CancelledAt:   t.CancelledAt,
		CreatedByID:   t.CreatedByID,
		CancelledByID: t.CancelledByID,
		CreatedAt:     t.CreatedAt,
	}
}
