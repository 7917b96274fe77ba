package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// WalletCache implements ports.WalletCache using Redis. It is strictly
// best-effort: services fall back to the repository on every miss or error
// and invalidate after each committed balance mutation.
type WalletCache struct {
	client *goredis.Client
	prefix string
}

// NewWalletCache creates a new Redis-backed wallet cache.
func NewWalletCache(client *goredis.Client) *WalletCache {
	return &WalletCache{
		client: client,
		prefix: "wallet:",
	}
}

// Get retrieves a cached wallet. Returns nil, nil on cache miss.
func (c *WalletCache) Get(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	val, err := c.client.Get(ctx, c.prefix+id.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis wallet get: %w", err)
	}

	w := &domain.Wallet{}
	if err := json.Unmarshal(val, w); err != nil {
		return nil, fmt.Errorf("unmarshal cached wallet: %w", err)
	}
	return w, nil
}

// Set stores a wallet with TTL.
func (c *WalletCache) Set(ctx context.Context, wallet *domain.Wallet, ttl time.Duration) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+wallet.ID.String(), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis wallet set: %w", err)
	}
	return nil
}

// Invalidate drops the cached wallet, if any.
func (c *WalletCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, c.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis wallet del: %w", err)
	}
	return nil
}
