package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// ErrInvalidSignature is returned when a configured secret does not
// match the inbound signature. The sender gets a 401 and no log entry
// is written, so an unauthenticated flood cannot grow the log.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// DefaultLogLimit is how many entries Logs returns when no limit is given
const DefaultLogLimit = 50

// SignatureVerifier validates an inbound payload against the shared secret
type SignatureVerifier interface {
	// Enabled reports whether a secret is configured
	Enabled() bool
	// Verify checks the signature header against the raw body bytes
	Verify(rawBody []byte, header string) bool
}

// RequestMeta is the request context captured alongside each webhook
type RequestMeta struct {
	SourceIP  string
	UserAgent string
}

// IngestResult is returned to the HTTP layer on a completed ingest
type IngestResult struct {
	EntryID string
	Event   string
	Result  Result
}

// UseCase defines the business operations for webhook ingestion
type UseCase interface {
	Ingest(ctx context.Context, rawBody []byte, signatureHeader string, meta RequestMeta) (IngestResult, error)
	Logs(ctx context.Context, limit int) ([]LogEntry, error)
}

type Service struct {
	store          LogStore
	router         Router
	verifier       SignatureVerifier
	handlerTimeout time.Duration
	logger         zerolog.Logger
}

// NewService creates a new ingest service with dependency injection
func NewService(store LogStore, router Router, verifier SignatureVerifier, handlerTimeout time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		store:          store,
		router:         router,
		verifier:       verifier,
		handlerTimeout: handlerTimeout,
		logger:         logger,
	}
}

/* Ingest runs the synchronous path for one inbound webhook:
 * verify -> normalize -> log -> route -> record outcome
 * The raw body must be the exact bytes from the wire; re-serializing a
 * parsed object would break signature verification
 */
func (s *Service) Ingest(ctx context.Context, rawBody []byte, signatureHeader string, meta RequestMeta) (IngestResult, error) {
	if !s.verifier.Enabled() {
		s.logger.Warn().Msg("webhook secret not configured, skipping signature verification")
	} else if !s.verifier.Verify(rawBody, signatureHeader) {
		s.logger.Error().Str("signature", signatureHeader).Msg("webhook signature verification failed")
		return IngestResult{}, ErrInvalidSignature
	}

	env, normErr := Normalize(rawBody)
	if normErr != nil {
		env = Envelope{Event: EventUnknown}
	}

	// The entry is written before routing so even a crashing handler
	// leaves an audit trail. It starts as an error; only a returned
	// handler result flips it to success.
	entryID := s.appendLog(ctx, env.Event, rawBody, meta)

	if normErr != nil {
		s.recordOutcome(ctx, entryID, Error, normErr.Error())
		return IngestResult{EntryID: entryID, Event: env.Event}, fmt.Errorf("normalizing webhook payload: %w", normErr)
	}

	handlerCtx, cancel := context.WithTimeout(ctx, s.handlerTimeout)
	defer cancel()

	result, err := s.router.Route(handlerCtx, env.Event, env.Data)
	if err != nil {
		s.recordOutcome(ctx, entryID, Error, err.Error())
		return IngestResult{EntryID: entryID, Event: env.Event}, fmt.Errorf("routing event %s: %w", env.Event, err)
	}

	s.recordOutcome(ctx, entryID, Success, "")
	s.logger.Info().Str("event", env.Event).Str("status", result.Status).Msg("webhook processed")

	return IngestResult{EntryID: entryID, Event: env.Event, Result: result}, nil
}

// Logs returns the most recent log entries, newest first
func (s *Service) Logs(ctx context.Context, limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	entries, err := s.store.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing webhook logs: %w", err)
	}
	return entries, nil
}

/* appendLog writes the durable entry for this attempt
 * A log store failure must not fail the webhook call itself: the entry
 * is an audit record, not a precondition for routing
 */
func (s *Service) appendLog(ctx context.Context, event string, rawBody []byte, meta RequestMeta) string {
	entry := LogEntry{
		ID:           uuid.New().String(),
		Event:        event,
		Payload:      rawBody,
		Outcome:      Error,
		ErrorMessage: "processing not completed",
		ReceivedAt:   time.Now().UTC(),
		SourceIP:     meta.SourceIP,
		UserAgent:    meta.UserAgent,
	}

	id, err := s.store.Create(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Str("event", event).Msg("storing webhook log entry")
		return ""
	}
	return id
}

func (s *Service) recordOutcome(ctx context.Context, entryID string, outcome Outcome, errorMessage string) {
	if entryID == "" {
		return
	}
	if err := s.store.MarkOutcome(ctx, entryID, outcome, errorMessage); err != nil {
		s.logger.Error().Err(err).Str("entry_id", entryID).Msg("marking webhook outcome")
	}
}
