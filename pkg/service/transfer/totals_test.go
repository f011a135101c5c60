package transfer

import (
	"context"
	"testing"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	t.Run("signed sum across posted and cancelled", func(t *testing.T) {
		// 100/5 posted SEND, 40/2 posted PAYOUT, 30/1 cancelled SEND.
		// 100 - 40 - 30 = 30 and 5 - 2 - 1 = 2.
		send := postedTransfer(domain.TypeSend, 10000, 500)
		payout := postedTransfer(domain.TypePayout, 4000, 200)
		cancelled := postedTransfer(domain.TypeSend, 3000, 100)
		cancelled.Status = domain.StatusCancelled

		got := computeTotals([]*domain.MoneyTransfer{send, payout, cancelled})
		assert.InDelta(t, 30.0, got.Amount, 1e-9)
		assert.InDelta(t, 2.0, got.Fee, 1e-9)
		assert.Equal(t, 3, got.Count)
		assert.Equal(t, 2, got.CountPosted)
		assert.Equal(t, 1, got.CountCancelled)
	})

	t.Run("cancelled payout still counts negative once", func(t *testing.T) {
		cancelled := postedTransfer(domain.TypePayout, 5000, 0)
		cancelled.Status = domain.StatusCancelled
		got := computeTotals([]*domain.MoneyTransfer{cancelled})
		assert.InDelta(t, -50.0, got.Amount, 1e-9)
	})

	t.Run("empty set yields zeros", func(t *testing.T) {
		got := computeTotals(nil)
		assert.Zero(t, got.Amount)
		assert.Zero(t, got.Fee)
		assert.Zero(t, got.Count)
	})

	t.Run("many small cent values do not drift", func(t *testing.T) {
		var transfers []*domain.MoneyTransfer
		for i := 0; i < 1000; i++ {
			transfers = append(transfers, postedTransfer(domain.TypeSend, 1, 1))
		}
		got := computeTotals(transfers)
		assert.InDelta(t, 10.0, got.Amount, 1e-9)
		assert.InDelta(t, 10.0, got.Fee, 1e-9)
	})
}

func TestTotals(t *testing.T) {
	t.Run("any authenticated role may read totals", func(t *testing.T) {
		svc, uow := newTestService()
		uow.Transfers.On("ListForTotals", mock.Anything, mock.Anything).
			Return([]*domain.MoneyTransfer{postedTransfer(domain.TypeSend, 10000, 500)}, nil)

		got, err := svc.Totals(context.Background(), session(domain.RoleMitarbeiter), dto.TotalsFilter{})
		require.NoError(t, err)
		assert.InDelta(t, 100.0, got.Amount, 1e-9)
	})

	t.Run("rejects an invalid provider filter", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Totals(context.Background(), session(domain.RoleAdmin),
			dto.TotalsFilter{Provider: "XOOM"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects an unauthenticated session", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Totals(context.Background(), domain.Session{}, dto.TotalsFilter{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
