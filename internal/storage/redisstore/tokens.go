package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-board-api/internal/storage"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "auth:revoked:"

// TokenDenylist stores revoked token ids in Redis with an expiry matching
// the token's remaining lifetime.
type TokenDenylist struct {
	client redis.Cmdable
}

// NewTokenDenylist creates a Redis backed denylist.
func NewTokenDenylist(client redis.Cmdable) *TokenDenylist {
	return &TokenDenylist{client: client}
}

var _ storage.TokenDenylist = (*TokenDenylist)(nil)

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}
	if err := d.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
}

// NoopDenylist is used when Redis is not configured; nothing is ever revoked
// and Revoke reports storage.ErrRevocationUnavailable.
type NoopDenylist struct{}

var _ storage.TokenDenylist = NoopDenylist{}

func (NoopDenylist) Revoke(context.Context, string, time.Duration) error {
	return storage.ErrRevocationUnavailable
}

func (NoopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
