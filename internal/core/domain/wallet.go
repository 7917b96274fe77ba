package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a non-negative balance. The balance is mutated only through
// the repository's atomic delta update inside a unit of work, never set
// directly.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewWallet creates an empty wallet with a fresh identifier and zero balance.
func NewWallet() *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.New(),
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
