// Package transfer implements the transfer ledger: recording, cancelling and
// deleting money transfers, listing with filters, and running totals.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/geldtransfer/backoffice/pkg/currency"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
	"github.com/google/uuid"
)

// Roles allowed to record and cancel transfers. Deletion is tighter.
var (
	recordRoles = []domain.Role{
		domain.RoleMitarbeiter,
		domain.RoleManager,
		domain.RoleAdmin,
		domain.RoleOwner,
	}
	deleteRoles = []domain.Role{domain.RoleAdmin, domain.RoleOwner}
)

// Service provides the transfer lifecycle and aggregation operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a transfer Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create validates and records a new posted transfer and writes a
// transfer.create audit entry for the actor.
func (s *Service) Create(
	ctx context.Context,
	session domain.Session,
	input dto.TransferCreate,
) (*dto.TransferRead, error) {
	log := s.logger.With("context", "Create")
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !session.HasRole(recordRoles...) {
		return nil, &domain.ForbiddenError{Reason: "only employees may record transfers"}
	}

	provider, err := domain.ParseProvider(input.Provider)
	if err != nil {
		return nil, err
	}
	typ, err := domain.ParseTransferType(input.Type)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmountField("amount", input.Amount)
	if err != nil {
		return nil, err
	}
	fee, err := parseAmountField("fee", input.Fee)
	if err != nil {
		return nil, err
	}

	t := domain.NewMoneyTransfer(provider, typ, amount, fee, input.Reference, session.UserID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		if err := transfers.Create(ctx, t); err != nil {
			return err
		}
		return s.audit(ctx, uow, session.UserID, domain.ActionTransferCreate,
			fmt.Sprintf("transfer created: %s, amount: %s, fee: %s", t.ID, t.Amount, t.Fee))
	})
	if err != nil {
		log.Error("create failed", "error", err)
		return nil, err
	}
	log.Info("transfer created", "id", t.ID, "provider", t.Provider, "type", t.Type)
	return mapToRead(t), nil
}

// Cancel transitions a posted transfer to cancelled with the given reason.
// The status check-and-set is a single conditional update so that concurrent
// cancels or a cancel racing a delete cannot both succeed.
func (s *Service) Cancel(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
	reason string,
) (*dto.TransferRead, error) {
	log := s.logger.With("context", "Cancel", "id", id)
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !session.HasRole(recordRoles...) {
		return nil, &domain.ForbiddenError{Reason: "only employees may cancel transfers"}
	}
	reason, err := domain.ValidateCancelReason(reason)
	if err != nil {
		return nil, err
	}

	var t *domain.MoneyTransfer
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		t, err = transfers.Get(ctx, id)
		if err != nil {
			return err
		}
		if !t.CanCancel() {
			return domain.ErrInvalidState
		}
		now := time.Now().UTC()
		actor := session.UserID
		patch := repository.TransferPatch{
			Status:        domain.StatusCancelled,
			CancelReason:  &reason,
			CancelledAt:   &now,
			CancelledByID: &actor,
		}
		rows, err := transfers.UpdateStatusIf(ctx, id, domain.StatusPosted, patch)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race against a concurrent cancel or delete.
			return domain.ErrInvalidState
		}
		t.Status = domain.StatusCancelled
		t.CancelReason = &reason
		t.CancelledAt = &now
		t.CancelledByID = &actor
		return s.audit(ctx, uow, session.UserID, domain.ActionTransferCancel,
			fmt.Sprintf("transfer cancelled: %s, reason: %s", id, reason))
	})
	if err != nil {
		log.Error("cancel failed", "error", err)
		return nil, err
	}
	log.Info("transfer cancelled")
	return mapToRead(t), nil
}

// Delete soft-deletes a transfer. The record stays in storage for audit but
// disappears from listings and totals. Deleting an already-deleted transfer
// re-sets the status and writes another audit entry; this re-logging is a
// recorded policy choice, not special-cased away.
func (s *Service) Delete(
	ctx context.Context,
	session domain.Session,
	id uuid.UUID,
) (*dto.TransferRead, error) {
	log := s.logger.With("context", "Delete", "id", id)
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !session.HasRole(deleteRoles...) {
		return nil, &domain.ForbiddenError{Reason: "only admins or the owner may delete transfers"}
	}

	var t *domain.MoneyTransfer
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		t, err = transfers.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := transfers.MarkDeleted(ctx, id); err != nil {
			return err
		}
		t.Status = domain.StatusDeleted
		return s.audit(ctx, uow, session.UserID, domain.ActionTransferDelete,
			fmt.Sprintf("transfer deleted: %s", id))
	})
	if err != nil {
		log.Error("delete failed", "error", err)
		return nil, err
	}
	log.Info("transfer deleted")
	return mapToRead(t), nil
}

// List returns non-deleted transfers matching the filter, newest first. Any
// authenticated session may list.
func (s *Service) List(
	ctx context.Context,
	session domain.Session,
	filter dto.TransferFilter,
) ([]*dto.TransferRead, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := validateFilterEnums(filter.Provider, filter.Type, filter.Status); err != nil {
		return nil, err
	}

	var out []*dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		list, err := transfers.List(ctx, filter)
		if err != nil {
			return err
		}
		out = make([]*dto.TransferRead, 0, len(list))
		for _, t := range list {
			out = append(out, mapToRead(t))
		}
		return nil
	})
	if err != nil {
		s.logger.Error("list failed", "error", err)
		return nil, err
	}
	return out, nil
}

func parseAmountField(field string, in dto.AmountInput) (currency.Amount, error) {
	a, err := currency.Parse(in.String())
	if err != nil {
		return 0, domain.NewValidationError(field, err.Error())
	}
	return a, nil
}

func validateFilterEnums(provider, typ, status string) error {
	if provider != "" {
		if _, err := domain.ParseProvider(provider); err != nil {
			return err
		}
	}
	if typ != "" {
		if _, err := domain.ParseTransferType(typ); err != nil {
			return err
		}
	}
	if status != "" {
		if _, err := domain.ParseTransferStatus(status); err != nil {
			return err
		}
	}
	return nil
}

// audit appends an entry inside the current unit of work, so it commits or
// rolls back together with the primary write.
func (s *Service) audit(
	ctx context.Context,
	uow repository.UnitOfWork,
	actor uuid.UUID,
	action, details string,
) error {
	audits, err := uow.AuditRepository()
	if err != nil {
		return err
	}
	return audits.Create(ctx, domain.NewAuditEntry(actor, action, details))
}

func mapToRead(t *domain.MoneyTransfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:            t.ID,
		Provider:      string(t.Provider),
		Type:          string(t.Type),
		Amount:        t.Amount.Float(),
		Fee:           t.Fee.Float(),
		Reference:     t.Reference,
		Status:        string(t.Status),
		CancelReason:  t.CancelReason,
		CancelledAt:   t.CancelledAt,
		CreatedByID:   t.CreatedByID,
		CancelledByID: t.CancelledByID,
		CreatedAt:     t.CreatedAt,
	}
}
