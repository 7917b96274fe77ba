package postgres

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger entry within the unit of work. Entries are
// immutable once inserted; no update or delete exists.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, operation_type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, t.ID, t.WalletID, t.OperationType, t.Amount, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByWallet fetches a wallet's transactions in creation order, paginated.
// Ties on created_at break deterministically on id.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT id, wallet_id, operation_type, amount, created_at
		FROM transactions WHERE wallet_id = $1
		ORDER BY created_at ASC, id ASC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(&t.ID, &t.WalletID, &t.OperationType, &t.Amount, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}
