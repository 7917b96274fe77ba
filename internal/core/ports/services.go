package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageLimit is the transaction listing page size when the caller
// does not specify one.
const DefaultPageLimit = 20

// Pagination holds offset/limit paging parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// Normalize returns a copy with defaults applied for out-of-range values.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// WalletService implements the wallet use cases.
type WalletService interface {
	CreateWallet(ctx context.Context) (*domain.Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
}

// TransactionService implements the transaction use cases.
type TransactionService interface {
	CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, p Pagination) ([]domain.Transaction, error)
}

// WalletManager enforces the balance invariants inside an active unit of
// work. It never opens its own; both methods must run against the same tx
// as the transaction insert they bracket.
type WalletManager interface {
	// CheckSufficientFunds performs the locked wallet read and fails with
	// WalletNotFound or NotEnoughFunds. Deposits never fail the balance
	// test.
	CheckSufficientFunds(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
	// ApplyBalanceDelta applies the entry's signed amount to the wallet
	// balance via the repository's atomic update.
	ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error
}

// TransactionValidator checks input-level rules on a transaction before it
// reaches the transaction service's unit of work.
type TransactionValidator interface {
	Validate(txn *domain.Transaction) error
}

// WalletCache is a best-effort read cache for wallet lookups. A nil result
// without error means cache miss; failures must never break the read path.
type WalletCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	Set(ctx context.Context, wallet *domain.Wallet, ttl time.Duration) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
