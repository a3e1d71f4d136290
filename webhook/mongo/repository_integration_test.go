//go:build integration

package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
	webhookmongo "github.com/dxbevents/honeycommb-bridge/webhook/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	mc, cleanup := SetupMongoContainer(t, ctx)
	defer cleanup()

	store := webhookmongo.NewLogStore(mc.DB)
	require.NoError(t, store.EnsureIndexes(ctx))

	newEntry := func(event string, outcome webhook.Outcome) webhook.LogEntry {
		return webhook.LogEntry{
			Event:      event,
			Payload:    []byte(`{"event":"` + event + `","data":{"id":1}}`),
			Outcome:    outcome,
			ReceivedAt: time.Now().UTC(),
		}
	}

	t.Run("success - create then get round trip", func(t *testing.T) {
		id, err := store.Create(ctx, newEntry("user.created", webhook.Error))
		require.NoError(t, err)
		require.NotEmpty(t, id)

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "user.created", got.Event)
		assert.Equal(t, webhook.Error, got.Outcome)
		assert.Equal(t, 0, got.RetryCount)
		assert.Nil(t, got.LastRetryAt)
	})

	t.Run("error - get missing entry", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-id")
		assert.ErrorIs(t, err, webhook.ErrNotFound)
	})

	t.Run("success - mark outcome success clears error message", func(t *testing.T) {
		entry := newEntry("user.updated", webhook.Error)
		entry.ErrorMessage = "processing not completed"
		id, err := store.Create(ctx, entry)
		require.NoError(t, err)

		require.NoError(t, store.MarkOutcome(ctx, id, webhook.Success, ""))

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, webhook.Success, got.Outcome)
		assert.Empty(t, got.ErrorMessage)
		require.NotNil(t, got.ProcessedAt)
	})

	t.Run("success - increment retry is a single atomic update", func(t *testing.T) {
		id, err := store.Create(ctx, newEntry("event.created", webhook.Error))
		require.NoError(t, err)

		require.NoError(t, store.IncrementRetry(ctx, id, webhook.Error, "handler boom"))
		require.NoError(t, store.IncrementRetry(ctx, id, webhook.Success, ""))

		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, got.RetryCount)
		assert.Equal(t, webhook.Success, got.Outcome)
		assert.Empty(t, got.ErrorMessage)
		require.NotNil(t, got.LastRetryAt)
	})

	t.Run("success - retry candidate eligibility window", func(t *testing.T) {
		db := mc.Client.Database("candidates_test")
		s := webhookmongo.NewLogStore(db)

		// Fresh failure: not yet eligible, its receipt is inside the delay window.
		fresh := newEntry("user.created", webhook.Error)
		freshID, err := s.Create(ctx, fresh)
		require.NoError(t, err)

		// Stale failure with no retries yet: eligible.
		stale := newEntry("user.updated", webhook.Error)
		stale.ReceivedAt = time.Now().UTC().Add(-10 * time.Minute)
		staleID, err := s.Create(ctx, stale)
		require.NoError(t, err)

		// Success entries are never candidates.
		ok := newEntry("event.created", webhook.Success)
		ok.ReceivedAt = time.Now().UTC().Add(-10 * time.Minute)
		_, err = s.Create(ctx, ok)
		require.NoError(t, err)

		candidates, err := s.FindRetryCandidates(ctx, 3, 5*time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, staleID, candidates[0].ID)
		assert.NotEqual(t, freshID, candidates[0].ID)
	})

	t.Run("success - exhausted entries are excluded from candidates", func(t *testing.T) {
		db := mc.Client.Database("exhausted_test")
		s := webhookmongo.NewLogStore(db)

		entry := newEntry("user.created", webhook.Error)
		entry.ReceivedAt = time.Now().UTC().Add(-time.Hour)
		id, err := s.Create(ctx, entry)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			require.NoError(t, s.IncrementRetry(ctx, id, webhook.Error, "still failing"))
		}

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, got.RetryCount)
		assert.Equal(t, webhook.Error, got.Outcome)

		candidates, err := s.FindRetryCandidates(ctx, 3, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("success - cleanup deletes only old success entries", func(t *testing.T) {
		db := mc.Client.Database("cleanup_test")
		s := webhookmongo.NewLogStore(db)

		oldSuccess := newEntry("user.created", webhook.Success)
		oldSuccessID, err := s.Create(ctx, oldSuccess)
		require.NoError(t, err)
		require.NoError(t, s.MarkOutcome(ctx, oldSuccessID, webhook.Success, ""))

		oldError := newEntry("user.updated", webhook.Error)
		oldErrorID, err := s.Create(ctx, oldError)
		require.NoError(t, err)
		require.NoError(t, s.MarkOutcome(ctx, oldErrorID, webhook.Error, "boom"))

		// Cutoff in the future makes both entries "old"; only success goes.
		deleted, err := s.CleanupOlderThan(ctx, time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = s.Get(ctx, oldSuccessID)
		assert.ErrorIs(t, err, webhook.ErrNotFound)
		_, err = s.Get(ctx, oldErrorID)
		assert.NoError(t, err)
	})

	t.Run("success - latest returns newest first", func(t *testing.T) {
		db := mc.Client.Database("latest_test")
		s := webhookmongo.NewLogStore(db)

		older := newEntry("user.created", webhook.Success)
		older.ReceivedAt = time.Now().UTC().Add(-time.Minute)
		_, err := s.Create(ctx, older)
		require.NoError(t, err)

		newer := newEntry("user.updated", webhook.Success)
		newerID, err := s.Create(ctx, newer)
		require.NoError(t, err)

		entries, err := s.Latest(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, newerID, entries[0].ID)
	})

	t.Run("success - stats aggregation", func(t *testing.T) {
		db := mc.Client.Database("stats_test")
		s := webhookmongo.NewLogStore(db)

		okID, err := s.Create(ctx, newEntry("user.created", webhook.Error))
		require.NoError(t, err)
		require.NoError(t, s.MarkOutcome(ctx, okID, webhook.Success, ""))

		failID, err := s.Create(ctx, newEntry("user.updated", webhook.Error))
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, s.IncrementRetry(ctx, failID, webhook.Error, "still failing"))
		}

		pendingID, err := s.Create(ctx, newEntry("event.created", webhook.Error))
		require.NoError(t, err)
		require.NoError(t, s.IncrementRetry(ctx, pendingID, webhook.Error, "flaky"))

		stats, err := s.Stats(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalFailed)
		assert.Equal(t, int64(1), stats.PendingRetries)
		assert.Equal(t, int64(1), stats.Exhausted)
		assert.Equal(t, 3, stats.MaxRetries)
		assert.Len(t, stats.ByOutcome, 2)
	})
}
