//go:build integration

package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/dxbevents/honeycommb-bridge/retry"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLockerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc, cleanup := SetupRedisContainer(t, ctx)
	defer cleanup()

	client := goredis.NewClient(&goredis.Options{Addr: rc.Addr})
	defer client.Close()

	t.Run("success - second acquire loses while lease is held", func(t *testing.T) {
		locker := retry.NewRedisLocker(client)

		won, err := locker.Acquire(ctx, "lease:held", time.Minute)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = locker.Acquire(ctx, "lease:held", time.Minute)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("success - release frees the lease immediately", func(t *testing.T) {
		locker := retry.NewRedisLocker(client)

		won, err := locker.Acquire(ctx, "lease:released", time.Minute)
		require.NoError(t, err)
		require.True(t, won)

		require.NoError(t, locker.Release(ctx, "lease:released"))

		won, err = locker.Acquire(ctx, "lease:released", time.Minute)
		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("success - lease expires on its own", func(t *testing.T) {
		locker := retry.NewRedisLocker(client)

		won, err := locker.Acquire(ctx, "lease:expiring", 100*time.Millisecond)
		require.NoError(t, err)
		require.True(t, won)

		time.Sleep(200 * time.Millisecond)

		won, err = locker.Acquire(ctx, "lease:expiring", time.Minute)
		require.NoError(t, err)
		assert.True(t, won)
	})
}
