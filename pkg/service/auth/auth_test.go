package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/geldtransfer/backoffice/internal/fixtures"
	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService() (*Service, *fixtures.MockUnitOfWork) {
	uow := fixtures.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.JwtConfig{Secret: testSecret, Expiry: 8 * time.Hour}
	return New(uow, cfg, logger), uow
}

func activeUser(t *testing.T) *domain.User {
	t.Helper()
	u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleManager, nil)
	require.NoError(t, err)
	return u
}

func parseToken(t *testing.T, raw string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestLogin(t *testing.T) {
	t.Run("returns a signed token with session claims", func(t *testing.T) {
		svc, uow := newTestService()
		u := activeUser(t)
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(u, nil)
		uow.Audits.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
			return e.Action == domain.ActionLogin && e.UserID == u.ID
		})).Return(nil)

		got, err := svc.Login(context.Background(), "erika", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "erika", got.User.Username)

		claims := parseToken(t, got.Token)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, "manager", claims["role"])
		assert.Equal(t, "erika", claims["username"])
		uow.Audits.AssertExpectations(t)
	})

	t.Run("unknown user yields invalid credentials", func(t *testing.T) {
		svc, uow := newTestService()
		uow.Users.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		_, err := svc.Login(context.Background(), "ghost", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		svc, uow := newTestService()
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(activeUser(t), nil)
		_, err := svc.Login(context.Background(), "erika", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("inactive account yields invalid credentials", func(t *testing.T) {
		svc, uow := newTestService()
		u := activeUser(t)
		u.Active = false
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(u, nil)
		_, err := svc.Login(context.Background(), "erika", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		uow.Audits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSessionFromToken(t *testing.T) {
	t.Run("round-trips through a generated token", func(t *testing.T) {
		svc, _ := newTestService()
		u := activeUser(t)
		raw, err := svc.GenerateToken(u)
		require.NoError(t, err)

		token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)

		sess, err := SessionFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, u.ID, sess.UserID)
		assert.Equal(t, domain.RoleManager, sess.Role)
		assert.True(t, sess.Authenticated())
	})

	t.Run("rejects claims without a user id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"})
		_, err := SessionFromToken(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects an unknown role claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "8f14e45f-ceea-4e17-a9c8-2f0ad7f2bdb4",
			"role":    "supervisor",
		})
		_, err := SessionFromToken(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
