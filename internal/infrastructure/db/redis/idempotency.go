package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyGuard implements ports.IdempotencyGuard with SET NX.
// Keys are built by the caller, e.g. idempotency:<op>:<user_id>:<key>.
type IdempotencyGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyGuard wraps client. ttl <= 0 selects a day.
func NewIdempotencyGuard(client redis.Cmdable, ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyGuard{client: client, ttl: ttl}
}

// Claim atomically takes key and reports false if it was already held.
func (g *IdempotencyGuard) Claim(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, key, time.Now().UTC().Unix(), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency claim: %w", err)
	}
	return ok, nil
}

// Release drops key so the request can be retried.
func (g *IdempotencyGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}
