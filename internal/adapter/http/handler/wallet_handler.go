package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	wallet, err := h.walletSvc.CreateWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromWallet(wallet))
}

// GetWallet handles GET /api/v1/wallets/:wallet_id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("wallet_id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a valid UUID"))
		return
	}

	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWallet(wallet))
}
