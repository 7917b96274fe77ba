package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TxSvc          ports.TransactionService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)
	txHandler := NewTransactionHandler(deps.TxSvc)

	v1 := r.Group("/api/v1")
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.GET("/:wallet_id", walletHandler.GetWallet)
		wallets.POST("/:wallet_id/operation", txHandler.CreateOperation)
		wallets.GET("/:wallet_id/transactions", txHandler.ListTransactions)
	}

	return r
}
