package transfer

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/geldtransfer/backoffice/pkg/currency"
	"github.com/geldtransfer/backoffice/pkg/domain"
	"github.com/geldtransfer/backoffice/pkg/dto"
	"github.com/geldtransfer/backoffice/pkg/repository"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	tr := domain.NewMoneyTransfer(
		domain.ProviderWU, domain.TypeSend, currency.Amount(10000), currency.Amount(500),
		"REF-1", uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "money_transfers" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), tr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "money_transfers" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_List_ExcludesDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "money_transfers" WHERE status <> (.+) ORDER BY created_at DESC`).
		WithArgs("deleted").
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider", "type", "amount_cents", "fee_cents", "status"}).
			AddRow(uuid.New(), "WU", "SEND", int64(10000), int64(500), "posted"))

	got, err := repo.List(context.Background(), dto.TransferFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusPosted, got[0].Status)
	assert.Equal(t, int64(10000), got[0].Amount.Cents())
}

func TestRepository_UpdateStatusIf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	reason := "wrong amount"
	patch := repository.TransferPatch{
		Status:       domain.StatusCancelled,
		CancelReason: &reason,
	}

	t.Run("reports one affected row on success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "money_transfers" SET (.+) WHERE id = (.+) AND status = (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows, err := repo.UpdateStatusIf(context.Background(), id, domain.StatusPosted, patch)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("reports zero rows on a lost race", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "money_transfers" SET (.+) WHERE id = (.+) AND status = (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		rows, err := repo.UpdateStatusIf(context.Background(), id, domain.StatusPosted, patch)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})
}

func TestRepository_ReferencesUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "money_transfers" WHERE created_by_id = (.+) OR cancelled_by_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	referenced, err := repo.ReferencesUser(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, referenced)
}
