package repository

import (
	"testing"

	"pos-backend/internal/app/ds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockRepository поднимает репозиторий над sqlmock-соединением.
// SkipDefaultTransaction выключает неявные BEGIN/COMMIT вокруг одиночных
// операторов: в ожиданиях остаются только явные границы скоупа.
func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return &Repository{db: db}, mock
}

func singleLineInput() TransactionInput {
	return TransactionInput{
		Name: "Иван",
		Lines: []ds.TransactionLine{
			{ServiceName: "Wash", UnitPrice: 15000, Quantity: 5},
		},
		Total:      75000,
		Issued:     "2024-01-15",
		CustomerID: 1,
		UserID:     2,
	}
}

func TestCreateTransactionCommitsAfterFullDecrement(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_transactions"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE products`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	txn, err := repo.CreateTransaction(singleLineInput())

	require.NoError(t, err)
	assert.Equal(t, uint(1), txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionRollsBackOnInsufficientInventory(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Услуга состоит из двух товаров, но защищенный UPDATE затронул один:
	// у второго не хватило остатка. Вставка транзакции должна откатиться.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_transactions"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE products`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	txn, err := repo.CreateTransaction(singleLineInput())

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionRollsBackOnServiceNameConflict(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_transactions"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	txn, err := repo.CreateTransaction(singleLineInput())

	assert.Nil(t, txn)
	assert.ErrorIs(t, err, ErrServiceNameConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionSkipsUnknownService(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Неизвестная услуга: позиция пропускается без списания, запись остается
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_transactions"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	txn, err := repo.CreateTransaction(singleLineInput())

	require.NoError(t, err)
	assert.Equal(t, uint(1), txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransactionSkipsServiceWithoutProducts(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_transactions"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	txn, err := repo.CreateTransaction(singleLineInput())

	require.NoError(t, err)
	assert.Equal(t, uint(1), txn.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
