package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Schema DDL is idempotent so Migrate can run on every startup. The CHECK
// constraint backs the application-level guarantee that a committed balance
// is never negative; the wallet_id index keeps paginated listing efficient.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wallets (
		id UUID PRIMARY KEY,
		balance NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		wallet_id UUID NOT NULL REFERENCES wallets(id),
		operation_type TEXT NOT NULL CHECK (operation_type IN ('DEPOSIT', 'WITHDRAW')),
		amount NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS ix_transactions_wallet_id ON transactions (wallet_id)`,
}

// Migrate applies the ledger schema.
func Migrate(ctx context.Context, pool Pool, log zerolog.Logger) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	log.Info().Int("statements", len(migrations)).Msg("database schema up to date")
	return nil
}
