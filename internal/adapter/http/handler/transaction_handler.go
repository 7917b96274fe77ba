package handler

import (
	"strconv"

	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles ledger entry endpoints.
type TransactionHandler struct {
	txSvc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txSvc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

// CreateOperation handles POST /api/v1/wallets/:wallet_id/operation.
func (h *TransactionHandler) CreateOperation(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("wallet_id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	var req dto.OperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn := domain.NewTransaction(walletID, domain.OperationType(req.OperationType), req.Amount)
	created, err := h.txSvc.CreateTransaction(c.Request.Context(), txn)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromTransaction(created))
}

// ListTransactions handles GET /api/v1/wallets/:wallet_id/transactions.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("wallet_id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ports.DefaultPageLimit)))
	if err != nil || limit < 0 {
		response.Error(c, apperror.Validation("limit must be a non-negative integer"))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		response.Error(c, apperror.Validation("offset must be a non-negative integer"))
		return
	}

	p := ports.Pagination{Limit: limit, Offset: offset}.Normalize()
	txns, err := h.txSvc.ListTransactions(c.Request.Context(), walletID, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransactions(txns, p.Limit, p.Offset))
}
