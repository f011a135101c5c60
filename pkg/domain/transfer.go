package domain

import (
	"strings"
	"time"

	"github.com/geldtransfer/backoffice/pkg/currency"
	"github.com/google/uuid"
)

// Provider is the external money-transfer network a record pertains to.
type Provider string

const (
	ProviderWU        Provider = "WU"
	ProviderRIA       Provider = "RIA"
	ProviderMoneygram Provider = "MONEYGRAM"
)

// ParseProvider validates a raw provider string.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderWU, ProviderRIA, ProviderMoneygram:
		return Provider(s), nil
	}
	return "", NewValidationError("provider", "must be one of WU, RIA, MONEYGRAM")
}

// TransferType is the direction/category of a transaction.
type TransferType string

const (
	TypeSend      TransferType = "SEND"
	TypePayout    TransferType = "PAYOUT"
	TypeDeduction TransferType = "DEDUCTION"
)

// ParseTransferType validates a raw type string.
func ParseTransferType(s string) (TransferType, error) {
	switch TransferType(s) {
	case TypeSend, TypePayout, TypeDeduction:
		return TransferType(s), nil
	}
	return "", NewValidationError("type", "must be one of SEND, PAYOUT, DEDUCTION")
}

// TransferStatus is a transfer's lifecycle state. Transitions are monotonic:
// posted -> cancelled, and {posted, cancelled} -> deleted. Nothing re-enters
// posted. Deleted records stay in storage for audit but are invisible to
// listings and totals.
type TransferStatus string

const (
	StatusPosted    TransferStatus = "posted"
	StatusCancelled TransferStatus = "cancelled"
	StatusDeleted   TransferStatus = "deleted"
)

// ParseTransferStatus validates a raw status string.
func ParseTransferStatus(s string) (TransferStatus, error) {
	switch TransferStatus(s) {
	case StatusPosted, StatusCancelled, StatusDeleted:
		return TransferStatus(s), nil
	}
	return "", NewValidationError("status", "must be one of posted, cancelled, deleted")
}

// MinCancelReasonLen is the minimum length of a cancellation reason.
const MinCancelReasonLen = 5

// MoneyTransfer is a recorded transfer transaction. Amount and Fee are
// fixed-point euro cents; CancelReason is set iff status is cancelled.
type MoneyTransfer struct {
	ID            uuid.UUID       `json:"id"`
	Provider      Provider        `json:"provider"`
	Type          TransferType    `json:"type"`
	Amount        currency.Amount `json:"amount"`
	Fee           currency.Amount `json:"fee"`
	Reference     *string         `json:"reference,omitempty"`
	Status        TransferStatus  `json:"status"`
	CancelReason  *string         `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time      `json:"cancelled_at,omitempty"`
	CreatedByID   uuid.UUID       `json:"created_by_id"`
	CancelledByID *uuid.UUID      `json:"cancelled_by_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewMoneyTransfer creates a posted transfer owned by createdBy. The
// reference is trimmed; an empty reference is stored as null.
func NewMoneyTransfer(
	provider Provider,
	typ TransferType,
	amount, fee currency.Amount,
	reference string,
	createdBy uuid.UUID,
) *MoneyTransfer {
	t := &MoneyTransfer{
		ID:          uuid.New(),
		Provider:    provider,
		Type:        typ,
		Amount:      amount,
		Fee:         fee,
		Status:      StatusPosted,
		CreatedByID: createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	if ref := strings.TrimSpace(reference); ref != "" {
		t.Reference = &ref
	}
	return t
}

// CanCancel reports whether the transfer may transition to cancelled.
// Only posted transfers are cancellable.
func (t *MoneyTransfer) CanCancel() bool {
	return t.Status == StatusPosted
}

// ValidateCancelReason checks the trimmed reason against the minimum length
// and returns the trimmed value.
func ValidateCancelReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) < MinCancelReasonLen {
		return "", NewValidationError("reason", "must be at least 5 characters")
	}
	return reason, nil
}

// Sign is the contribution of the transfer to running totals: -1 for a
// cancelled transfer regardless of type, otherwise -1 for PAYOUT and
// DEDUCTION and +1 for SEND. The cancelled check takes precedence; the type
// is only consulted for posted transfers.
func (t *MoneyTransfer) Sign() int64 {
	if t.Status == StatusCancelled {
		return -1
	}
	if t.Type == TypePayout || t.Type == TypeDeduction {
		return -1
	}
	return 1
}
