package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "wallet-ledger/internal/adapter/http/handler"
	"wallet-ledger/internal/adapter/storage/memory"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack over in-memory storage and
// miniredis. It exercises the real HTTP layer, middleware, handlers,
// services, and the Redis wallet cache end-to-end.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	walletCache := redisStorage.NewWalletCache(rdb)

	walletRepo := memory.NewWalletRepo()
	txRepo := memory.NewTransactionRepo()
	transactor := memory.NewTransactor()

	log := logger.NewWithWriter("debug", io.Discard)

	walletSvc := service.NewWalletService(walletRepo, transactor, walletCache, 5*time.Minute, log)
	txSvc := service.NewTransactionService(
		txRepo,
		service.NewWalletManagementService(walletRepo),
		service.NewTransactionValidator(),
		transactor,
		walletCache,
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TxSvc:          txSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testApp{server: srv, redis: mr}
}

// do issues a request against the test server and decodes the JSON body.
func (a *testApp) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp.StatusCode, parsed
}

// createWallet creates a wallet over HTTP and returns its id.
func (a *testApp) createWallet(t *testing.T) string {
	t.Helper()
	code, body := a.do(t, http.MethodPost, "/api/v1/wallets", "")
	require.Equal(t, http.StatusCreated, code)
	return body["data"].(map[string]any)["id"].(string)
}

// operate posts a ledger operation and returns status code and body.
func (a *testApp) operate(t *testing.T, walletID, opType, amount string) (int, map[string]any) {
	t.Helper()
	return a.do(t, http.MethodPost, "/api/v1/wallets/"+walletID+"/operation",
		`{"operation_type":"`+opType+`","amount":"`+amount+`"}`)
}

// balance reads the wallet over HTTP and returns its balance string.
func (a *testApp) balance(t *testing.T, walletID string) string {
	t.Helper()
	code, body := a.do(t, http.MethodGet, "/api/v1/wallets/"+walletID, "")
	require.Equal(t, http.StatusOK, code)
	return body["data"].(map[string]any)["balance"].(string)
}
