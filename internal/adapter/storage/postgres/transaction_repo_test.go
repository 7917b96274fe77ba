package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(walletID uuid.UUID, op domain.OperationType, amount string) *domain.Transaction {
	return &domain.Transaction{
		ID:            uuid.New(),
		WalletID:      walletID,
		OperationType: op,
		Amount:        decimal.RequireFromString(amount),
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"id", "wallet_id", "operation_type", "amount", "created_at"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), domain.OperationTypeDeposit, "100.00")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.WalletID, txn.OperationType, txn.Amount, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	first := newTestTransaction(walletID, domain.OperationTypeDeposit, "10.00")
	second := newTestTransaction(walletID, domain.OperationTypeWithdraw, "4.50")

	rows := pgxmock.NewRows(transactionColumns()).
		AddRow(first.ID, first.WalletID, first.OperationType, first.Amount, first.CreatedAt).
		AddRow(second.ID, second.WalletID, second.OperationType, second.Amount, second.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id .+ ORDER BY created_at ASC, id ASC").
		WithArgs(walletID, 20, 0).
		WillReturnRows(rows)

	result, err := repo.ListByWallet(context.Background(), walletID, 20, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, first.ID, result[0].ID)
	assert.Equal(t, second.ID, result[1].ID)
	assert.True(t, result[1].Amount.Equal(second.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWallet_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id").
		WithArgs(walletID, 20, 100).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.ListByWallet(context.Background(), walletID, 20, 100)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
