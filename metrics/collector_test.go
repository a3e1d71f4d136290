package metrics_test

import (
	"context"
	"errors"
	"testing"

	honeycommbmocks "github.com/dxbevents/honeycommb-bridge/honeycommb/mocks"
	"github.com/dxbevents/honeycommb-bridge/metrics"
	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/dxbevents/honeycommb-bridge/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCollector(t *testing.T) {
	ctx := context.Background()

	t.Run("success - collect gathers outcomes, retries and mirror sizes", func(t *testing.T) {
		log := mocks.NewLogStore(t)
		users := honeycommbmocks.NewUserStore(t)
		events := honeycommbmocks.NewEventStore(t)

		log.On("Stats", ctx, 3).Return(webhook.RetryStats{
			ByOutcome: []webhook.OutcomeStats{
				{Outcome: "success", Count: 90},
				{Outcome: "error", Count: 10, AvgRetries: 1.5, MaxRetried: 3},
			},
			TotalFailed:    10,
			PendingRetries: 7,
			Exhausted:      3,
			MaxRetries:     3,
		}, nil)
		users.On("Count", ctx).Return(int64(150), nil)
		events.On("Count", ctx).Return(int64(40), nil)

		collected, err := metrics.NewStoreCollector(log, users, events, 3).Collect(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(90), collected.OutcomeCounts["success"])
		assert.Equal(t, int64(10), collected.OutcomeCounts["error"])
		assert.Equal(t, metrics.RetryMetrics{
			TotalFailed: 10,
			Pending:     7,
			Exhausted:   3,
			AvgRetries:  1.5,
			MaxRetried:  3,
		}, collected.Retries)
		assert.Equal(t, metrics.MirrorMetrics{Users: 150, Events: 40}, collected.Mirror)
		assert.False(t, collected.Timestamp.IsZero())
	})

	t.Run("success - outcome counts default missing outcomes to zero", func(t *testing.T) {
		log := mocks.NewLogStore(t)
		users := honeycommbmocks.NewUserStore(t)
		events := honeycommbmocks.NewEventStore(t)

		log.On("Stats", ctx, 3).Return(webhook.RetryStats{}, nil)

		counts, err := metrics.NewStoreCollector(log, users, events, 3).GetOutcomeCounts(ctx)

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"success": 0, "error": 0}, counts)
	})

	t.Run("error - log stats failure", func(t *testing.T) {
		log := mocks.NewLogStore(t)
		users := honeycommbmocks.NewUserStore(t)
		events := honeycommbmocks.NewEventStore(t)

		log.On("Stats", ctx, 3).Return(webhook.RetryStats{}, errors.New("aggregation failed"))

		_, err := metrics.NewStoreCollector(log, users, events, 3).Collect(ctx)

		require.ErrorContains(t, err, "getting outcome counts")
	})
}
