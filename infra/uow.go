package infra

import (
	"context"
	"errors"

	"gorm.io/gorm"

	auditrepo "github.com/geldtransfer/backoffice/infra/repository/audit"
	transferrepo "github.com/geldtransfer/backoffice/infra/repository/transfer"
	userrepo "github.com/geldtransfer/backoffice/infra/repository/user"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

// UoW is the gorm-backed unit of work. Repositories obtained inside Do run
// on the transaction session, so a status update and its audit entry commit
// or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

var _ repository.UnitOfWork = (*UoW)(nil)

// NewUoW creates a unit of work over the given connection.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. The uow passed to fn hands out
// repositories bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() (*gorm.DB, error) {
	if u.tx == nil {
		return nil, errors.New("repository access outside a transaction; call Do first")
	}
	return u.tx, nil
}

func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return transferrepo.New(tx), nil
}

func (u *UoW) UserRepository() (repository.UserRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return userrepo.New(tx), nil
}

func (u *UoW) AuditRepository() (repository.AuditRepository, error) {
	tx, err := u.session()
	if err != nil {
		return nil, err
	}
	return auditrepo.New(tx), nil
}
