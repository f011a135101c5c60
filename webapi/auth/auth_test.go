package auth_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/webapi/testutils"
)

func TestLogin(t *testing.T) {
	t.Run("returns a token on valid credentials", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleManager, nil)
		require.NoError(t, err)
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(u, nil)
		uow.Audits.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/auth/login",
			map[string]string{"username": "erika", "password": "s3cret"}, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var envelope struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		testutils.DecodeBody(t, resp, &envelope)
		assert.NotEmpty(t, envelope.Data.Token)
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		uow.Users.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/auth/login",
			map[string]string{"username": "ghost", "password": "nope"}, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("returns 400 on a missing password", func(t *testing.T) {
		app, _ := testutils.SetupTestApp(t)
		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/auth/login",
			map[string]string{"username": "erika"}, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestWhoami(t *testing.T) {
	t.Run("returns the session's account", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleMitarbeiter, nil)
		require.NoError(t, err)
		uow.Users.On("Get", mock.Anything, u.ID).Return(u, nil)

		resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/auth/whoami", nil,
			testutils.TokenFor(t, u))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("returns 401 without a token", func(t *testing.T) {
		app, _ := testutils.SetupTestApp(t)
		resp := testutils.MakeRequest(t, app, fiber.MethodGet, "/auth/whoami", nil, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
