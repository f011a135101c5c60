// Package audit exposes read access to the audit log for administrators.
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

// DefaultLimit caps an unbounded listing request.
const DefaultLimit = 200

// Service reads the audit log. Writes happen inside the services that own
// the audited actions, never here.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an audit Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// List returns the newest audit entries, up to limit. A non-nil userID
// narrows the listing to that actor. Only admins and the owner may read
// the log.
func (s *Service) List(
	ctx context.Context,
	session domain.Session,
	userID *uuid.UUID,
	limit int,
) ([]dto.AuditRead, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !session.HasRole(domain.RoleAdmin) {
		return nil, &domain.ForbiddenError{Reason: "only admins or the owner may read the audit log"}
	}
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	var entries []*domain.AuditEntry
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AuditRepository()
		if err != nil {
			return err
		}
		if userID != nil {
			entries, err = repo.ListByUser(ctx, *userID, limit)
		} else {
			entries, err = repo.List(ctx, limit)
		}
		return err
	})
	if err != nil {
		s.logger.With("context", "List").Error("listing audit log failed", "error", err)
		return nil, err
	}

	out := make([]dto.AuditRead, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditRead{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
