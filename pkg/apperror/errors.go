package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. All classified
// errors are client-caused and non-retryable; unclassified failures are
// wrapped as SYS_001 and propagate after the unit of work rolls back.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet (WAL) ----

func ErrWalletNotFound() *AppError {
	return New("WAL_001", "Wallet not found", http.StatusNotFound)
}

func ErrNotEnoughFunds() *AppError {
	return New("WAL_002", "Not enough funds in wallet", http.StatusPaymentRequired)
}

// ---- Transaction (TXN) ----

func ErrInvalidAmount() *AppError {
	return New("TXN_001", "Transaction amount must not be negative", http.StatusBadRequest)
}

func ErrInvalidOperationType(op string) *AppError {
	return New("TXN_002", fmt.Sprintf("Invalid operation type: %q", op), http.StatusBadRequest)
}

func ErrTransactionNotFound() *AppError {
	return New("TXN_003", "Transaction not found", http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unclassified failure as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrLockTimeout signals that the wallet row lock could not be acquired
// within the bounded wait.
func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// Validation returns a request-level validation error, for malformed
// input rejected before it reaches the domain rules.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
