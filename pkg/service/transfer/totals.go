package transfer

import (
	"context"

	"github.com/geldtransfer/backoffice/pkg/currency"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

// Totals computes the signed aggregate over the visible (posted and
// cancelled) transfer set, optionally narrowed by provider and date range.
// Any authenticated session may read totals.
func (s *Service) Totals(
	ctx context.Context,
	session domain.Session,
	filter dto.TotalsFilter,
) (*dto.Totals, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if filter.Provider != "" {
		if _, err := domain.ParseProvider(filter.Provider); err != nil {
			return nil, err
		}
	}

	var totals *dto.Totals
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		list, err := transfers.ListForTotals(ctx, filter)
		if err != nil {
			return err
		}
		totals = computeTotals(list)
		return nil
	})
	if err != nil {
		s.logger.Error("totals failed", "error", err)
		return nil, err
	}
	return totals, nil
}

// computeTotals is a pure function of the filtered transfer set. Amounts are
// summed as signed integer cents; euro floats are produced only at the end,
// so long runs of small transactions cannot drift.
func computeTotals(transfers []*domain.MoneyTransfer) *dto.Totals {
	var amountCents, feeCents int64
	totals := &dto.Totals{Count: len(transfers)}
	for _, t := range transfers {
		sign := t.Sign()
		amountCents += t.Amount.Cents() * sign
		feeCents += t.Fee.Cents() * sign
		switch t.Status {
		case domain.StatusPosted:
			totals.CountPosted++
		case domain.StatusCancelled:
			totals.CountCancelled++
		}
	}
	totals.Amount = currency.Amount(amountCents).Float()
	totals.Fee = currency.Amount(feeCents).Float()
	return totals
}
