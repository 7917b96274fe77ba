package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepo_CreateAndGet(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := domain.NewWallet()

	require.NoError(t, repo.Create(ctx, nil, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.ID, got.ID)
	assert.True(t, got.Balance.IsZero())

	// Mutating the returned copy must not touch the stored wallet.
	got.Balance = decimal.RequireFromString("999")
	again, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, again.Balance.IsZero())
}

func TestWalletRepo_GetByID_Absent(t *testing.T) {
	repo := NewWalletRepo()

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestWalletRepo_UpdateBalance(t *testing.T) {
	repo := NewWalletRepo()
	ctx := context.Background()
	w := domain.NewWallet()
	require.NoError(t, repo.Create(ctx, nil, w))

	require.NoError(t, repo.UpdateBalance(ctx, nil, w.ID, decimal.RequireFromString("100.00")))
	require.NoError(t, repo.UpdateBalance(ctx, nil, w.ID, decimal.RequireFromString("-30.00")))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.RequireFromString("70.00")))
	assert.True(t, got.UpdatedAt.After(w.UpdatedAt) || got.UpdatedAt.Equal(w.UpdatedAt))
}

func TestWalletRepo_UpdateBalance_Absent(t *testing.T) {
	repo := NewWalletRepo()

	err := repo.UpdateBalance(context.Background(), nil, uuid.New(), decimal.New(1, 0))
	assert.ErrorContains(t, err, "wallet not found")
}

func TestTransactionRepo_ListByWallet_Pagination(t *testing.T) {
	repo := NewTransactionRepo()
	ctx := context.Background()
	walletID := uuid.New()

	var created []*domain.Transaction
	for i := 0; i < 3; i++ {
		txn := domain.NewTransaction(walletID, domain.OperationTypeDeposit, decimal.RequireFromString("10.00"))
		created = append(created, txn)
		require.NoError(t, repo.Create(ctx, nil, txn))
	}
	// Another wallet's entry must not leak into the listing.
	require.NoError(t, repo.Create(ctx, nil, domain.NewTransaction(uuid.New(), domain.OperationTypeDeposit, decimal.New(1, 0))))

	page, err := repo.ListByWallet(ctx, walletID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, created[1].ID, page[0].ID)
	assert.Equal(t, created[2].ID, page[1].ID)

	empty, err := repo.ListByWallet(ctx, walletID, 20, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactor_SerializesUnitsOfWork(t *testing.T) {
	tr := NewTransactor()
	ctx := context.Background()

	tx1, err := tr.Begin(ctx)
	require.NoError(t, err)

	second := make(chan struct{})
	go func() {
		tx2, err := tr.Begin(ctx)
		assert.NoError(t, err)
		_ = tx2.Rollback(ctx)
		close(second)
	}()

	// The second Begin must block until the first unit of work ends.
	select {
	case <-second:
		t.Fatal("second unit of work started while the first was open")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, tx1.Commit(ctx))
	// Rollback after commit is a no-op, not a double unlock.
	require.NoError(t, tx1.Rollback(ctx))

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("second unit of work never started after commit")
	}
}

func TestTransactor_ConcurrentUnits(t *testing.T) {
	tr := NewTransactor()
	repo := NewWalletRepo()
	ctx := context.Background()
	w := domain.NewWallet()
	require.NoError(t, repo.Create(ctx, nil, w))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := tr.Begin(ctx)
			assert.NoError(t, err)
			defer tx.Rollback(ctx)
			assert.NoError(t, repo.UpdateBalance(ctx, tx, w.ID, decimal.New(1, 0)))
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(decimal.New(50, 0)))
}
