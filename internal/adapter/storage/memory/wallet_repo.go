package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository backed by a map. Row-level
// serialization comes from the memory Transactor; the repo's own mutex only
// protects map access.
type WalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

// NewWalletRepo creates an in-memory wallet repository.
func NewWalletRepo() *WalletRepo {
	return &WalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

// Create stores a copy of the wallet.
func (r *WalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *w
	r.wallets[w.ID] = &stored
	return nil
}

// GetByID returns a copy of the wallet, or nil, nil when absent.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

// GetByIDForUpdate behaves like GetByID; exclusivity is provided by the
// serializing transactor rather than a row lock.
func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

// Delete removes the wallet. Returns an error when the id is unknown.
func (r *WalletRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[id]; !ok {
		return fmt.Errorf("wallet not found: %s", id)
	}
	delete(r.wallets, id)
	return nil
}

// UpdateBalance applies the signed delta and refreshes updated_at.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	w.Balance = w.Balance.Add(delta)
	w.UpdatedAt = time.Now().UTC()
	return nil
}
