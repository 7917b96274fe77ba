package ports

import (
	"context"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside the caller's unit of work; the
// locked read holds its row lock until that unit of work ends.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	// GetByID is a plain, non-locking read. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	// GetByIDForUpdate reads the wallet while acquiring an exclusive row
	// lock, serializing concurrent balance mutations on the same wallet.
	// Returns nil, nil when absent.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	// UpdateBalance applies balance += delta as a server-side arithmetic
	// update. Must only be called while holding the lock taken by
	// GetByIDForUpdate in the same unit of work.
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, delta decimal.Decimal) error
}

// TransactionRepository defines persistence operations for the append-only
// transaction log.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	// ListByWallet returns the wallet's transactions in creation order,
	// paginated. An empty slice, not an error, when nothing matches.
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

// DBTransactor provides the unit-of-work boundary. Callers Begin, defer
// Rollback, and Commit explicitly on success; rollback after commit is a
// no-op, so every exit path releases the session. Nesting is not supported.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
