package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/geldtransfer/backoffice/internal/fixtures"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *fixtures.MockUnitOfWork) {
	uow := fixtures.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(uow, logger), uow
}

func TestList(t *testing.T) {
	t.Run("returns mapped entries for an admin", func(t *testing.T) {
		svc, uow := newTestService()
		entry := domain.NewAuditEntry(uuid.New(), domain.ActionTransferCreate, "transfer created")
		uow.Audits.On("List", mock.Anything, 50).Return([]*domain.AuditEntry{entry}, nil)

		got, err := svc.List(context.Background(),
			domain.Session{UserID: uuid.New(), Role: domain.RoleAdmin}, nil, 50)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.ActionTransferCreate, got[0].Action)
	})

	t.Run("narrows to one actor when a user filter is set", func(t *testing.T) {
		svc, uow := newTestService()
		actorID := uuid.New()
		entry := domain.NewAuditEntry(actorID, domain.ActionLogin, "logged in")
		uow.Audits.On("ListByUser", mock.Anything, actorID, 10).
			Return([]*domain.AuditEntry{entry}, nil)

		got, err := svc.List(context.Background(),
			domain.Session{UserID: uuid.New(), Role: domain.RoleAdmin}, &actorID, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, actorID, got[0].UserID)
		uow.Audits.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("caps an unbounded limit", func(t *testing.T) {
		svc, uow := newTestService()
		uow.Audits.On("List", mock.Anything, DefaultLimit).Return(nil, nil)
		_, err := svc.List(context.Background(),
			domain.Session{UserID: uuid.New(), Role: domain.RoleOwner}, nil, 0)
		require.NoError(t, err)
		uow.Audits.AssertExpectations(t)
	})

	t.Run("forbids managers and mitarbeiter", func(t *testing.T) {
		svc, _ := newTestService()
		for _, role := range []domain.Role{domain.RoleManager, domain.RoleMitarbeiter} {
			_, err := svc.List(context.Background(),
				domain.Session{UserID: uuid.New(), Role: role}, nil, 10)
			assert.ErrorIs(t, err, domain.ErrForbidden, "role %s", role)
		}
	})

	t.Run("rejects an unauthenticated session", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.List(context.Background(), domain.Session{}, nil, 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
