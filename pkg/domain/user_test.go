package domain_test

import (
	"testing"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()
	email := "anna@example.com"
	u, err := domain.NewUser("anna", "Anna Schmidt", "pass", domain.RoleManager, &email)
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.Equal(t, domain.RoleManager, u.Role)
	assert.NotEqual(t, "pass", u.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("pass", u.PasswordHash))
	require.NotNil(t, u.Email)
	assert.Equal(t, email, *u.Email)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()
	badEmail := "not-an-email"
	tests := []struct {
		name     string
		username string
		fullName string
		password string
		role     domain.Role
		email    *string
		field    string
	}{
		{"short username", "ab", "Anna", "pass", domain.RoleAdmin, nil, "username"},
		{"short name", "anna", "A", "pass", domain.RoleAdmin, nil, "name"},
		{"short password", "anna", "Anna", "abc", domain.RoleAdmin, nil, "password"},
		{"bad role", "anna", "Anna", "pass", domain.Role("root"), nil, "role"},
		{"bad email", "anna", "Anna", "pass", domain.RoleAdmin, &badEmail, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := domain.NewUser(tt.username, tt.fullName, tt.password, tt.role, tt.email)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestNewUserBlankEmailIsNull(t *testing.T) {
	t.Parallel()
	blank := "   "
	u, err := domain.NewUser("anna", "Anna", "pass", domain.RoleMitarbeiter, &blank)
	require.NoError(t, err)
	assert.Nil(t, u.Email)
}
