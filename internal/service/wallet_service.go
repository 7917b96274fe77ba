package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	transactor ports.DBTransactor
	cache      ports.WalletCache // nil = caching disabled
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	transactor ports.DBTransactor,
	cache ports.WalletCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		transactor: transactor,
		cache:      cache,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// CreateWallet persists a fresh zero-balance wallet inside a unit of work.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context) (*domain.Wallet, error) {
	wallet := domain.NewWallet()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.cacheSet(ctx, wallet)

	s.log.Info().Str("wallet_id", wallet.ID.String()).Msg("wallet created")
	return wallet, nil
}

// GetWallet returns the wallet by id, serving from the cache when possible.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("wallet_id", id.String()).Msg("wallet cache read failed, falling through")
		}
		if cached != nil {
			return cached, nil
		}
	}

	wallet, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	s.cacheSet(ctx, wallet)
	return wallet, nil
}

// cacheSet fills the cache best-effort; failures are logged, never surfaced.
func (s *WalletServiceImpl) cacheSet(ctx context.Context, wallet *domain.Wallet) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, wallet, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("wallet_id", wallet.ID.String()).Msg("failed to cache wallet")
	}
}
