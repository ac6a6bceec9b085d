package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCmdable serves SetNX and Del from a map; every other command panics
// through the nil embedded interface.
type fakeCmdable struct {
	redis.Cmdable
	keys   map[string]time.Duration
	err    error
	lastTT time.Duration
}

func newFake() *fakeCmdable {
	return &fakeCmdable{keys: map[string]time.Duration{}}
}

func (f *fakeCmdable) SetNX(_ context.Context, key string, _ interface{}, ttl time.Duration) *redis.BoolCmd {
	f.lastTT = ttl
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCmdable) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			delete(f.keys, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestIdempotencyGuard_ClaimOnce(t *testing.T) {
	fake := newFake()
	g := NewIdempotencyGuard(fake, time.Hour)
	ctx := context.Background()

	ok, err := g.Claim(ctx, "idempotency:deposit:1:abc")
	if err != nil || !ok {
		t.Fatalf("first claim: ok=%v err=%v", ok, err)
	}
	if fake.lastTT != time.Hour {
		t.Errorf("expected ttl 1h, got %s", fake.lastTT)
	}

	ok, err = g.Claim(ctx, "idempotency:deposit:1:abc")
	if err != nil || ok {
		t.Fatalf("second claim: ok=%v err=%v", ok, err)
	}
}

func TestIdempotencyGuard_ReleaseAllowsReclaim(t *testing.T) {
	g := NewIdempotencyGuard(newFake(), 0)
	ctx := context.Background()

	if _, err := g.Claim(ctx, "k"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := g.Release(ctx, "k"); err != nil {
		t.Fatalf("release: %v", err)
	}
	ok, err := g.Claim(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("reclaim: ok=%v err=%v", ok, err)
	}
}

func TestIdempotencyGuard_DefaultTTL(t *testing.T) {
	fake := newFake()
	g := NewIdempotencyGuard(fake, 0)

	if _, err := g.Claim(context.Background(), "k"); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if fake.lastTT != defaultIdempotencyTTL {
		t.Errorf("expected default ttl, got %s", fake.lastTT)
	}
}

func TestIdempotencyGuard_Errors(t *testing.T) {
	fake := newFake()
	fake.err = errors.New("connection refused")
	g := NewIdempotencyGuard(fake, time.Minute)

	if _, err := g.Claim(context.Background(), "k"); err == nil {
		t.Fatal("expected claim error")
	}
	if err := g.Release(context.Background(), "k"); err == nil {
		t.Fatal("expected release error")
	}
}
