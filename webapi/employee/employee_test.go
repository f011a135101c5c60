package employee_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/webapi/testutils"
)

func adminToken(t *testing.T) string {
	t.Helper()
	u, err := domain.NewUser("chef", "Chef Admin", "s3cret", domain.RoleAdmin, nil)
	require.NoError(t, err)
	return testutils.TokenFor(t, u)
}

func TestCreateEmployee(t *testing.T) {
	body := map[string]string{
		"username": "erika",
		"name":     "Erika Muster",
		"password": "s3cret",
		"role":     "mitarbeiter",
	}

	t.Run("returns 201 for an admin", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(nil, domain.ErrNotFound)
		uow.Users.On("Create", mock.Anything, mock.Anything).Return(nil)
		uow.Audits.On("Create", mock.Anything, mock.Anything).Return(nil)

		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/employees", body, adminToken(t))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("returns 403 for a mitarbeiter", func(t *testing.T) {
		app, _ := testutils.SetupTestApp(t)
		u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleMitarbeiter, nil)
		require.NoError(t, err)
		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/employees", body,
			testutils.TokenFor(t, u))
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("returns 409 on a taken username", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		existing, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleManager, nil)
		require.NoError(t, err)
		uow.Users.On("GetByUsername", mock.Anything, "erika").Return(existing, nil)

		resp := testutils.MakeRequest(t, app, fiber.MethodPost, "/employees", body, adminToken(t))
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Run("returns 409 while transfers reference the user", func(t *testing.T) {
		app, uow := testutils.SetupTestApp(t)
		u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleMitarbeiter, nil)
		require.NoError(t, err)
		uow.Users.On("Get", mock.Anything, u.ID).Return(u, nil)
		uow.Transfers.On("ReferencesUser", mock.Anything, u.ID).Return(true, nil)

		resp := testutils.MakeRequest(t, app, fiber.MethodDelete,
			"/employees/"+u.ID.String(), nil, adminToken(t))
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("returns 400 on a malformed id", func(t *testing.T) {
		app, _ := testutils.SetupTestApp(t)
		resp := testutils.MakeRequest(t, app, fiber.MethodDelete,
			"/employees/not-a-uuid", nil, adminToken(t))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestToggleEmployee(t *testing.T) {
	app, uow := testutils.SetupTestApp(t)
	u, err := domain.NewUser("erika", "Erika Muster", "s3cret", domain.RoleMitarbeiter, nil)
	require.NoError(t, err)
	uow.Users.On("Get", mock.Anything, u.ID).Return(u, nil)
	uow.Users.On("Update", mock.Anything, mock.Anything).Return(nil)
	uow.Audits.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp := testutils.MakeRequest(t, app, fiber.MethodPost,
		"/employees/"+u.ID.String()+"/toggle", nil, adminToken(t))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
