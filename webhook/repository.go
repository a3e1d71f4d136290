package webhook

import (
	"context"
	"errors"
	"time"
)

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// ErrNotFound is returned when a log entry does not exist
var ErrNotFound = errors.New("webhook log entry not found")

// Reader provides read operations for the webhook log
type Reader interface {
	/* Context is always the first parameter in functions that do I/O
	 * This allows for cancellation, timeouts, and shared values
	 */
	Get(ctx context.Context, id string) (LogEntry, error)
	// Latest returns the most recent entries, newest first
	Latest(ctx context.Context, limit int) ([]LogEntry, error)
}

// Writer provides write operations for the webhook log
type Writer interface {
	// Create persists a new log entry and returns its ID
	Create(ctx context.Context, entry LogEntry) (string, error)
	/* MarkOutcome records the result of a processing attempt
	 * An empty errorMessage clears any previous error
	 */
	MarkOutcome(ctx context.Context, id string, outcome Outcome, errorMessage string) error
	/* IncrementRetry atomically bumps the retry count, stamps the
	 * retry time and records the outcome of this attempt in a single
	 * store operation, so concurrent sweeps cannot interleave partial
	 * writes on the same entry
	 */
	IncrementRetry(ctx context.Context, id string, outcome Outcome, errorMessage string) error
}

// Sweeper provides the queries the retry scheduler runs
type Sweeper interface {
	/* FindRetryCandidates returns error entries below the retry limit
	 * whose last retry (if any) is older than retryDelay, bounded to
	 * batchSize to keep each sweep's work finite
	 */
	FindRetryCandidates(ctx context.Context, maxRetries int, retryDelay time.Duration, batchSize int) ([]LogEntry, error)
	// CleanupOlderThan removes success entries strictly older than cutoff
	CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	// Stats aggregates retry bookkeeping grouped by outcome
	Stats(ctx context.Context, maxRetries int) (RetryStats, error)
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type LogStore interface {
	Reader
	Writer
	Sweeper
	Close(ctx context.Context) error
}

// OutcomeStats summarizes one outcome group in the log
type OutcomeStats struct {
	Outcome    string  `json:"outcome"`
	Count      int64   `json:"count"`
	AvgRetries float64 `json:"avg_retries"`
	MaxRetried int     `json:"max_retried"`
}

// RetryStats is the aggregate view the scheduler and metrics expose
type RetryStats struct {
	ByOutcome      []OutcomeStats `json:"by_outcome"`
	TotalFailed    int64          `json:"total_failed"`
	PendingRetries int64          `json:"pending_retries"`
	Exhausted      int64          `json:"exhausted"`
	MaxRetries     int            `json:"max_retries"`
}

// Router dispatches a normalized event to its handler.
// Unknown event types are not an error: they yield an ignored Result.
type Router interface {
	Route(ctx context.Context, event string, data map[string]any) (Result, error)
}
