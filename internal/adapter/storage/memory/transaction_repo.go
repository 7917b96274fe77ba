package memory

import (
	"context"
	"sync"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository over an ordered
// slice, so listing naturally follows creation order.
type TransactionRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewTransactionRepo creates an in-memory transaction repository.
func NewTransactionRepo() *TransactionRepo {
	return &TransactionRepo{}
}

// Create appends a copy of the ledger entry.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *t)
	return nil
}

// ListByWallet returns the wallet's entries in insertion order, paginated.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []domain.Transaction{}
	for _, t := range r.transactions {
		if t.WalletID == walletID {
			matched = append(matched, t)
		}
	}

	if offset >= len(matched) {
		return []domain.Transaction{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}
