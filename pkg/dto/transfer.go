package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AmountInput carries a currency field as entered by the caller. The wire
// value may be a JSON string (locale-formatted, e.g. "1.234,56") or a JSON
// number; either way the raw text is preserved for currency.Parse.
type AmountInput string

// UnmarshalJSON accepts both string and numeric JSON values.
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = AmountInput(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = AmountInput(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (a AmountInput) String() string { return string(a) }

// TransferCreate is the input for recording a new transfer.
type TransferCreate struct {
	Provider  string      `json:"provider" validate:"required"`
	Type      string      `json:"type" validate:"required"`
	Amount    AmountInput `json:"amount" validate:"required"`
	Fee       AmountInput `json:"fee" validate:"required"`
	Reference string      `json:"reference,omitempty"`
}

// TransferRead is the read-optimized view of a transfer. Currency fields are
// plain euro values for downstream consumption.
type TransferRead struct {
	ID            uuid.UUID  `json:"id"`
	Provider      string     `json:"provider"`
	Type          string     `json:"type"`
	Amount        float64    `json:"amount"`
	Fee           float64    `json:"fee"`
	Reference     *string    `json:"reference,omitempty"`
	Status        string     `json:"status"`
	CancelReason  *string    `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedByID   uuid.UUID  `json:"created_by_id"`
	CancelledByID *uuid.UUID `json:"cancelled_by_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// TransferFilter narrows a transfer listing. Zero values mean "no filter";
// deleted transfers are excluded regardless of the Status value.
type TransferFilter struct {
	Provider  string
	Type      string
	Status    string
	Reference string
	From      *time.Time
	To        *time.Time
}

// TotalsFilter narrows the totals computation.
type TotalsFilter struct {
	Provider string
	From     *time.Time
	To       *time.Time
}

// Totals is the signed aggregate over the visible transfer set.
type Totals struct {
	Amount         float64 `json:"amount"`
	Fee            float64 `json:"fee"`
	Count          int     `json:"count"`
	CountPosted    int     `json:"count_posted"`
	CountCancelled int     `json:"count_cancelled"`
}

// DateLayout is the calendar-date format accepted by range filters.
const DateLayout = "2006-01-02"

// ParseDateRange converts calendar-date strings into time bounds. The "to"
// bound is expanded to the end of the day (23:59:59) so a same-day filter
// covers the whole day. Empty strings yield nil bounds.
func ParseDateRange(from, to string) (*time.Time, *time.Time, error) {
	var fromT, toT *time.Time
	if s := strings.TrimSpace(from); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil, nil, err
		}
		fromT = &t
	}
	if s := strings.TrimSpace(to); s != "" {
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return nil, nil, err
		}
		end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		toT = &end
	}
	return fromT, toT, nil
}
