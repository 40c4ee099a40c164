package database

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ledger records webhook deliveries so duplicates can be told apart from
// first deliveries. Stripe delivers at least once; the ledger is what makes
// repeat deliveries observable.
type Ledger interface {
	// FirstDelivery marks the key as seen and reports whether this was the
	// first time.
	FirstDelivery(ctx context.Context, key string) (bool, error)
}

// RedisLedger is a Ledger backed by Redis SETNX with a TTL, shared across
// replicas.
type RedisLedger struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLedger(client *redis.Client, ttl time.Duration) *RedisLedger {
	return &RedisLedger{
		client: client,
		ttl:    ttl,
	}
}

func (l *RedisLedger) getKey(key string) string {
	return "webhook:delivered:" + key
}

func (l *RedisLedger) FirstDelivery(ctx context.Context, key string) (bool, error) {
	return l.client.SetNX(ctx, l.getKey(key), 1, l.ttl).Result()
}

// MemoryLedger is an in-process Ledger used when no Redis URL is configured.
// Dedup then only holds within a single process lifetime.
type MemoryLedger struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
}

func NewMemoryLedger(ttl time.Duration) *MemoryLedger {
	return &MemoryLedger{
		seen: make(map[string]time.Time),
		ttl:  ttl,
	}
}

func (l *MemoryLedger) FirstDelivery(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for k, at := range l.seen {
		if now.Sub(at) > l.ttl {
			delete(l.seen, k)
		}
	}

	if _, ok := l.seen[key]; ok {
		return false, nil
	}
	l.seen[key] = now
	return true, nil
}
