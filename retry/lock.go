package retry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

/* Sweep lease. Multiple API replicas each run the scheduler, so a
 * sweep only proceeds after winning a short lease. The lease expires
 * on its own, a crashed holder never blocks the next sweep
 */

// Locker serializes sweeps across scheduler instances
type Locker interface {
	// Acquire tries to take the lease, reporting whether it was won
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release gives the lease back before it expires
	Release(ctx context.Context, key string) error
}

// RedisLocker implements Locker with a Redis SET NX lease
type RedisLocker struct {
	client *redis.Client
}

// NewRedisLocker creates a locker on the given Redis client
func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquiring sweep lease: %w", err)
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("releasing sweep lease: %w", err)
	}
	return nil
}

// LocalLocker is an in-process Locker for single-instance deployments
// and tests
type LocalLocker struct {
	mu sync.Mutex
}

// NewLocalLocker creates an in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) Acquire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return l.mu.TryLock(), nil
}

func (l *LocalLocker) Release(_ context.Context, _ string) error {
	l.mu.Unlock()
	return nil
}
