package repository

import (
	"testing"

	"pos-backend/internal/app/ds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransaction(t *testing.T) {
	in := TransactionInput{
		Name: "Иван",
		Lines: []ds.TransactionLine{
			{ServiceName: "Wash", UnitPrice: 15000, Quantity: 5},
			{ServiceName: "Wax", UnitPrice: 25000, Quantity: 2},
		},
		Total:      125000,
		Issued:     "2024-01-15",
		CustomerID: 1,
		UserID:     2,
	}

	txn := buildTransaction(in)

	assert.Equal(t, "Иван", txn.Name)
	assert.Equal(t, "Wash\nWax", txn.NameService)
	assert.Equal(t, "15000\n25000", txn.PriceService)
	assert.Equal(t, "5\n2", txn.Quantity)
	assert.Equal(t, 125000.0, txn.Total)
	assert.Equal(t, "2024-01-15", txn.Issued)
	assert.Equal(t, uint(1), txn.CustomerID)
	assert.Equal(t, uint(2), txn.UserID)
}

func TestBuildTransactionPreservesLineOrder(t *testing.T) {
	in := TransactionInput{
		Lines: []ds.TransactionLine{
			{ServiceName: "C", UnitPrice: 3, Quantity: 3},
			{ServiceName: "A", UnitPrice: 1, Quantity: 1},
			{ServiceName: "B", UnitPrice: 2, Quantity: 2},
		},
	}

	txn := buildTransaction(in)

	// Порядок позиций в запросе переносится в запись как есть
	assert.Equal(t, "C\nA\nB", txn.NameService)
	assert.Equal(t, "3\n1\n2", txn.PriceService)
	assert.Equal(t, "3\n1\n2", txn.Quantity)
}

func TestUpdateTransactionSingleStatement(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Ровно один UPDATE, без предварительного SELECT: проверка существования
	// по отдельному запросу дала бы гонку с конкурентным удалением
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTransaction(1, singleLineInput())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTransactionNotFoundByRowsAffected(t *testing.T) {
	repo, mock := newMockRepository(t)

	// Строку уже удалили: UPDATE никого не затронул, успех недопустим
	mock.ExpectExec(`UPDATE "transactions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTransaction(99, singleLineInput())

	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
