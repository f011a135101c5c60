// Package fixtures holds hand-written mocks shared by service and handler
// tests.
package fixtures

import (
	"context"

	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransferRepository mocks repository.TransferRepository.
type MockTransferRepository struct {
	mock.Mock
}

var _ repository.TransferRepository = (*MockTransferRepository)(nil)

func (m *MockTransferRepository) Create(ctx context.Context, t *domain.MoneyTransfer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransferRepository) Get(ctx context.Context, id uuid.UUID) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*domain.MoneyTransfer)
	return t, args.Error(1)
}

func (m *MockTransferRepository) List(ctx context.Context, f dto.TransferFilter) ([]*domain.MoneyTransfer, error) {
	args := m.Called(ctx, f)
	ts, _ := args.Get(0).([]*domain.MoneyTransfer)
	return ts, args.Error(1)
}

func (m *MockTransferRepository) ListForTotals(ctx context.Context, f dto.TotalsFilter) ([]*domain.MoneyTransfer, error) {
	args := m.Called(ctx, f)
	ts, _ := args.Get(0).([]*domain.MoneyTransfer)
	return ts, args.Error(1)
}

func (m *MockTransferRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from domain.TransferStatus, patch repository.TransferPatch) (int64, error) {
	args := m.Called(ctx, id, from, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransferRepository) ReferencesUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]*domain.User)
	return us, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByRole(ctx context.Context, role domain.Role) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

// MockAuditRepository mocks repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

var _ repository.AuditRepository = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) Create(ctx context.Context, e *domain.AuditEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockAuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	es, _ := args.Get(0).([]*domain.AuditEntry)
	return es, args.Error(1)
}

func (m *MockAuditRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AuditEntry, error) {
	args := m.Called(ctx, userID, limit)
	es, _ := args.Get(0).([]*domain.AuditEntry)
	return es, args.Error(1)
}

// MockUnitOfWork mocks repository.UnitOfWork. Do runs the callback against
// the mock itself so tests exercise the same repositories they stubbed.
type MockUnitOfWork struct {
	mock.Mock
	Transfers *MockTransferRepository
	Users     *MockUserRepository
	Audits    *MockAuditRepository
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)

// NewMockUnitOfWork wires a unit of work around fresh repository mocks.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Transfers: &MockTransferRepository{},
		Users:     &MockUserRepository{},
		Audits:    &MockAuditRepository{},
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *MockUnitOfWork) TransferRepository() (repository.TransferRepository, error) {
	return m.Transfers, nil
}

func (m *MockUnitOfWork) UserRepository() (repository.UserRepository, error) {
	return m.Users, nil
}

func (m *MockUnitOfWork) AuditRepository() (repository.AuditRepository, error) {
	return m.Audits, nil
}
