// Package seed bootstraps the initial employee accounts.
package seed

import (
	"context"
	"log/slog"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

type account struct {
	username string
	name     string
	password string
	role     domain.Role
}

// The documented demo credentials. Seeding is skipped entirely once an
// owner account exists, so a reseeded database never duplicates accounts.
var accounts = []account{
	{username: "owner", name: "Inhaber", password: "Admin@1234", role: domain.RoleOwner},
	{username: "manager", name: "Manager", password: "Manager@1234", role: domain.RoleManager},
	{username: "mitarbeiter", name: "Mitarbeiter", password: "Mitarbeiter@1234", role: domain.RoleMitarbeiter},
}

// Run creates the bootstrap accounts unless an owner already exists.
func Run(ctx context.Context, uow repository.UnitOfWork, logger *slog.Logger) error {
	return uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := users.ExistsByRole(ctx, domain.RoleOwner)
		if err != nil {
			return err
		}
		if exists {
			logger.Info("owner account present, skipping seeding")
			return nil
		}
		for _, a := range accounts {
			u, err := domain.NewUser(a.username, a.name, a.password, a.role, nil)
			if err != nil {
				return err
			}
			if err := users.Create(ctx, u); err != nil {
				return err
			}
			logger.Info("seeded account", "username", a.username, "role", a.role)
		}
		return nil
	})
}
