package webhook

import "time"

/* LogEntry represents one received (or retried) webhook in the durable log
 * Uses value semantics as it represents data, not behavior
 */
type LogEntry struct {
	ID           string
	Event        string
	Payload      []byte
	Outcome      Outcome
	ErrorMessage string
	RetryCount   int
	LastRetryAt  *time.Time
	ReceivedAt   time.Time
	ProcessedAt  *time.Time
	SourceIP     string
	UserAgent    string
}

/* Result is what an event handler reports back after processing
 * It is consumed for logging and the HTTP response only; control flow
 * depends solely on the error returned alongside it
 */
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	// StatusProcessed means the handler applied the event to a read model
	StatusProcessed = "success"
	// StatusIgnored means the event was recognized but intentionally not
	// persisted, or the event type is unknown to this deployment
	StatusIgnored = "ignored"
)

// Ignored builds the result for events this deployment does not act on
func Ignored(message string) Result {
	return Result{Status: StatusIgnored, Message: message}
}

// Processed builds the result for events applied to a read model
func Processed(message string) Result {
	return Result{Status: StatusProcessed, Message: message}
}
