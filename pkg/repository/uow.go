package repository

import "context"

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. All repositories obtained inside Do share the same database
// session, so a status check-and-set and its audit write commit together.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	TransferRepository() (TransferRepository, error)
	UserRepository() (UserRepository, error)
	AuditRepository() (AuditRepository, error)
}
