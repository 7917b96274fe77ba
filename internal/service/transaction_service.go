package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionServiceImpl implements ports.TransactionService: the
// lock-check-insert-update-commit protocol that keeps every wallet balance
// equal to the signed sum of its ledger entries.
type TransactionServiceImpl struct {
	txRepo     ports.TransactionRepository
	walletMgr  ports.WalletManager
	validator  ports.TransactionValidator
	transactor ports.DBTransactor
	cache      ports.WalletCache // nil = caching disabled
	log        zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	txRepo ports.TransactionRepository,
	walletMgr ports.WalletManager,
	validator ports.TransactionValidator,
	transactor ports.DBTransactor,
	cache ports.WalletCache,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		txRepo:     txRepo,
		walletMgr:  walletMgr,
		validator:  validator,
		transactor: transactor,
		cache:      cache,
		log:        log,
	}
}

// CreateTransaction records a deposit or withdrawal and applies its balance
// delta in one atomic unit of work. Ordering is the correctness mechanism:
// the locked funds check precedes the insert, the balance update follows it,
// and a single commit makes both durable together or neither.
func (s *TransactionServiceImpl) CreateTransaction(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	// Input rules run before any unit of work, so validation failures
	// never trigger a rollback.
	if err := s.validator.Validate(txn); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}

	// Once the unit of work has begun it must reach commit or rollback
	// even if the caller goes away; a half-open session holding the row
	// lock is worse than a late response.
	uowCtx := context.WithoutCancel(ctx)
	defer dbTx.Rollback(uowCtx) //nolint:errcheck

	// Locked read + funds check. Serializes concurrent mutations of the
	// same wallet for the remainder of this unit of work.
	if err := s.walletMgr.CheckSufficientFunds(uowCtx, dbTx, txn); err != nil {
		return nil, err
	}

	if err := s.txRepo.Create(uowCtx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := s.walletMgr.ApplyBalanceDelta(uowCtx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := dbTx.Commit(uowCtx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-commit: drop any stale cached balance (best-effort).
	if s.cache != nil {
		if err := s.cache.Invalidate(uowCtx, txn.WalletID); err != nil {
			s.log.Warn().Err(err).Str("wallet_id", txn.WalletID.String()).Msg("failed to invalidate wallet cache")
		}
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", txn.WalletID.String()).
		Str("operation_type", string(txn.OperationType)).
		Str("amount", txn.Amount.String()).
		Msg("transaction recorded")

	return txn, nil
}

// ListTransactions returns one page of the wallet's ledger in creation
// order. An offset past the end yields an empty page, not an error.
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, walletID uuid.UUID, p ports.Pagination) ([]domain.Transaction, error) {
	p = p.Normalize()

	txns, err := s.txRepo.ListByWallet(ctx, walletID, p.Limit, p.Offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}
