package service

import (
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
)

// AmountValidator rejects negative amounts. Zero is allowed.
type AmountValidator struct{}

func (AmountValidator) Validate(txn *domain.Transaction) error {
	if txn.Amount.IsNegative() {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// OperationTypeValidator rejects anything outside {DEPOSIT, WITHDRAW}.
type OperationTypeValidator struct{}

func (OperationTypeValidator) Validate(txn *domain.Transaction) error {
	if !txn.OperationType.Valid() {
		return apperror.ErrInvalidOperationType(string(txn.OperationType))
	}
	return nil
}

// ComposedTransactionValidator runs its validators in registration order;
// the first failure short-circuits the rest.
type ComposedTransactionValidator struct {
	validators []ports.TransactionValidator
}

// NewTransactionValidator builds the standard validation pipeline.
func NewTransactionValidator() *ComposedTransactionValidator {
	return &ComposedTransactionValidator{
		validators: []ports.TransactionValidator{
			AmountValidator{},
			OperationTypeValidator{},
		},
	}
}

func (c *ComposedTransactionValidator) Validate(txn *domain.Transaction) error {
	for _, v := range c.validators {
		if err := v.Validate(txn); err != nil {
			return err
		}
	}
	return nil
}
