package service

import (
	"context"
	"fmt"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// WalletManagementService implements ports.WalletManager. It is an internal
// collaborator of the transaction service and always runs inside the unit
// of work it is handed — it never opens its own.
type WalletManagementService struct {
	walletRepo ports.WalletRepository
}

// NewWalletManagementService creates a new WalletManagementService.
func NewWalletManagementService(walletRepo ports.WalletRepository) *WalletManagementService {
	return &WalletManagementService{walletRepo: walletRepo}
}

// CheckSufficientFunds takes the wallet row lock and verifies the entry can
// be applied. The lock stays held until the enclosing transaction ends, so
// concurrent mutations of the same wallet serialize here.
func (s *WalletManagementService) CheckSufficientFunds(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, tx, txn.WalletID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return apperror.ErrWalletNotFound()
	}
	if txn.OperationType == domain.OperationTypeWithdraw && wallet.Balance.LessThan(txn.Amount) {
		return apperror.ErrNotEnoughFunds()
	}
	return nil
}

// ApplyBalanceDelta applies the entry's signed amount through the atomic
// balance update. Must be called after CheckSufficientFunds in the same
// unit of work.
func (s *WalletManagementService) ApplyBalanceDelta(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	if err := s.walletRepo.UpdateBalance(ctx, tx, txn.WalletID, txn.BalanceDelta()); err != nil {
		return fmt.Errorf("apply balance delta: %w", err)
	}
	return nil
}
