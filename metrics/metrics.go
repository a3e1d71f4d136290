package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the webhook pipeline.
type Metrics struct {
	// OutcomeCounts maps outcome name to count of log entries in that outcome
	OutcomeCounts map[string]int64 `json:"outcome_counts"`

	// Retries summarizes the retry backlog
	Retries RetryMetrics `json:"retries"`

	// Mirror summarizes the read-model mirrors fed by the handlers
	Mirror MirrorMetrics `json:"mirror"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// RetryMetrics represents the retry backlog of the webhook log.
type RetryMetrics struct {
	// TotalFailed is entries currently in the error outcome
	TotalFailed int64 `json:"total_failed"`

	// Pending is failed entries still below the retry limit
	Pending int64 `json:"pending"`

	// Exhausted is failed entries that used up every retry
	Exhausted int64 `json:"exhausted"`

	// AvgRetries is the mean retry count across failed entries
	AvgRetries float64 `json:"avg_retries"`

	// MaxRetried is the highest retry count seen on a failed entry
	MaxRetried int64 `json:"max_retried"`
}

// MirrorMetrics represents the size of the mirrored read models.
type MirrorMetrics struct {
	// Users is the total number of mirrored community members
	Users int64 `json:"users"`

	// Events is the total number of mirrored community events
	Events int64 `json:"events"`
}

// Collector defines the interface for collecting metrics from the pipeline.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetOutcomeCounts returns the count of log entries by outcome
	GetOutcomeCounts(ctx context.Context) (map[string]int64, error)

	// GetRetryMetrics returns the current retry backlog
	GetRetryMetrics(ctx context.Context) (RetryMetrics, error)

	// GetMirrorMetrics returns the size of the read-model mirrors
	GetMirrorMetrics(ctx context.Context) (MirrorMetrics, error)
}
