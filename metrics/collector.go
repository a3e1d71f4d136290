package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/webhook"
)

// StoreCollector implements the Collector interface over the webhook
// log and the mirror stores
type StoreCollector struct {
	log        webhook.Sweeper
	users      honeycommb.UserStore
	events     honeycommb.EventStore
	maxRetries int
}

// NewStoreCollector creates a collector over the pipeline's stores
func NewStoreCollector(log webhook.Sweeper, users honeycommb.UserStore, events honeycommb.EventStore, maxRetries int) *StoreCollector {
	return &StoreCollector{
		log:        log,
		users:      users,
		events:     events,
		maxRetries: maxRetries,
	}
}

// Collect gathers all metrics from the stores
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	outcomeCounts, err := c.GetOutcomeCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting outcome counts: %w", err)
	}

	retries, err := c.GetRetryMetrics(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting retry metrics: %w", err)
	}

	mirror, err := c.GetMirrorMetrics(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting mirror metrics: %w", err)
	}

	return Metrics{
		OutcomeCounts: outcomeCounts,
		Retries:       retries,
		Mirror:        mirror,
		Timestamp:     time.Now(),
	}, nil
}

// GetOutcomeCounts returns counts of log entries grouped by outcome
func (c *StoreCollector) GetOutcomeCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := c.log.Stats(ctx, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("getting webhook log stats: %w", err)
	}

	outcomeCounts := map[string]int64{
		webhook.Success.String(): 0,
		webhook.Error.String():   0,
	}
	for _, group := range stats.ByOutcome {
		outcomeCounts[group.Outcome] = group.Count
	}
	return outcomeCounts, nil
}

// GetRetryMetrics returns the current retry backlog
func (c *StoreCollector) GetRetryMetrics(ctx context.Context) (RetryMetrics, error) {
	stats, err := c.log.Stats(ctx, c.maxRetries)
	if err != nil {
		return RetryMetrics{}, fmt.Errorf("getting webhook log stats: %w", err)
	}

	metrics := RetryMetrics{
		TotalFailed: stats.TotalFailed,
		Pending:     stats.PendingRetries,
		Exhausted:   stats.Exhausted,
	}
	for _, group := range stats.ByOutcome {
		if group.Outcome == webhook.Error.String() {
			metrics.AvgRetries = group.AvgRetries
			metrics.MaxRetried = int64(group.MaxRetried)
		}
	}
	return metrics, nil
}

// GetMirrorMetrics returns the size of the read-model mirrors
func (c *StoreCollector) GetMirrorMetrics(ctx context.Context) (MirrorMetrics, error) {
	users, err := c.users.Count(ctx)
	if err != nil {
		return MirrorMetrics{}, fmt.Errorf("counting mirrored users: %w", err)
	}

	events, err := c.events.Count(ctx)
	if err != nil {
		return MirrorMetrics{}, fmt.Errorf("counting mirrored events: %w", err)
	}

	return MirrorMetrics{Users: users, Events: events}, nil
}
