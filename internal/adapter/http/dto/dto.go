package dto

import (
	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// OperationRequest is the request body for POST /wallets/:wallet_id/operation.
// Amount carries no "required" binding on purpose: a zero amount is a legal
// entry and must not be rejected at the binding layer.
type OperationRequest struct {
	OperationType string          `json:"operation_type" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// WalletResponse is the response body for wallet reads and creation.
type WalletResponse struct {
	ID        string          `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// TransactionResponse is the response body for a single ledger entry.
type TransactionResponse struct {
	ID            string          `json:"id"`
	WalletID      string          `json:"wallet_id"`
	OperationType string          `json:"operation_type"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"created_at"`
}

// TransactionListResponse is one page of a wallet's ledger. Count is the
// number of items on this page, not the wallet's total.
type TransactionListResponse struct {
	Count  int                   `json:"count"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Items  []TransactionResponse `json:"items"`
}

// FromWallet maps a domain wallet to its response shape.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID.String(),
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt.Format(timeLayout),
		UpdatedAt: w.UpdatedAt.Format(timeLayout),
	}
}

// FromTransaction maps a domain transaction to its response shape.
func FromTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		WalletID:      t.WalletID.String(),
		OperationType: string(t.OperationType),
		Amount:        t.Amount,
		CreatedAt:     t.CreatedAt.Format(timeLayout),
	}
}

// FromTransactions maps one page of entries. Items is never nil so the JSON
// field encodes as [] rather than null.
func FromTransactions(txns []domain.Transaction, limit, offset int) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, FromTransaction(&txns[i]))
	}
	return TransactionListResponse{
		Count:  len(items),
		Limit:  limit,
		Offset: offset,
		Items:  items,
	}
}

const timeLayout = "2006-01-02T15:04:05.999999Z07:00"
