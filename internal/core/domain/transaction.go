package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType represents the direction of a ledger entry.
type OperationType string

const (
	OperationTypeDeposit  OperationType = "DEPOSIT"
	OperationTypeWithdraw OperationType = "WITHDRAW"
)

// Valid reports whether the operation type is one of the known values.
func (o OperationType) Valid() bool {
	return o == OperationTypeDeposit || o == OperationTypeWithdraw
}

// Transaction is an immutable ledger entry against exactly one wallet.
// Entries are append-only: there is no update or delete.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	WalletID      uuid.UUID       `json:"wallet_id"`
	OperationType OperationType   `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewTransaction creates a ledger entry with a fresh identifier.
func NewTransaction(walletID uuid.UUID, op OperationType, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		WalletID:      walletID,
		OperationType: op,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}
}

// BalanceDelta returns the signed amount this entry applies to the wallet
// balance: positive for deposits, negative for withdrawals.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.OperationType == OperationTypeWithdraw {
		return t.Amount.Neg()
	}
	return t.Amount
}
