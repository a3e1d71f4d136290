package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// sweepLeaseKey is the shared lease name all scheduler instances compete on
const sweepLeaseKey = "honeycommb:webhook:sweep"

// Store is the slice of the webhook log the scheduler needs
type Store interface {
	webhook.Writer
	webhook.Sweeper
}

// Config tunes the retry sweep and log retention
type Config struct {
	MaxRetries     int
	RetryDelay     time.Duration
	BatchSize      int
	SweepInterval  time.Duration
	RetentionDays  int
	HandlerTimeout time.Duration
}

// SweepReport summarizes one sweep pass
type SweepReport struct {
	Processed         int  `json:"processed"`
	Succeeded         int  `json:"succeeded"`
	PermanentFailures int  `json:"permanent_failures"`
	Skipped           bool `json:"skipped"`
}

/* Scheduler periodically replays failed webhooks through the router.
 * Each entry gets at most cfg.MaxRetries retry attempts, spaced at
 * least cfg.RetryDelay apart, cfg.BatchSize entries per sweep
 */
type Scheduler struct {
	store  Store
	router webhook.Router
	locker Locker
	cfg    Config
	cron   *cron.Cron
	logger zerolog.Logger
}

// NewScheduler creates a retry scheduler over the webhook log
func NewScheduler(store Store, router webhook.Router, locker Locker, cfg Config, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		router: router,
		locker: locker,
		cfg:    cfg,
		logger: logger,
	}
}

// Start begins the periodic sweep and the daily retention cleanup.
// It returns immediately; jobs run on the cron's own goroutine.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron = cron.New()

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.cfg.SweepInterval), func() {
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error().Err(err).Msg("retry sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling retry sweep: %w", err)
	}

	_, err = s.cron.AddFunc("0 3 * * *", func() {
		if _, err := s.Cleanup(ctx); err != nil {
			s.logger.Error().Err(err).Msg("webhook log cleanup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling log cleanup: %w", err)
	}

	s.cron.Start()
	s.logger.Info().
		Dur("interval", s.cfg.SweepInterval).
		Int("max_retries", s.cfg.MaxRetries).
		Msg("retry scheduler started")
	return nil
}

// Stop halts the cron and waits for a running job to finish
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

/* Sweep runs one retry pass. The pass is guarded by a lease so
 * overlapping sweeps from multiple instances never double-process an
 * entry; losing the lease skips the pass rather than waiting
 */
func (s *Scheduler) Sweep(ctx context.Context) (SweepReport, error) {
	won, err := s.locker.Acquire(ctx, sweepLeaseKey, s.cfg.SweepInterval)
	if err != nil {
		return SweepReport{}, err
	}
	if !won {
		s.logger.Debug().Msg("sweep lease held elsewhere, skipping")
		return SweepReport{Skipped: true}, nil
	}
	defer func() {
		if err := s.locker.Release(ctx, sweepLeaseKey); err != nil {
			s.logger.Error().Err(err).Msg("releasing sweep lease")
		}
	}()

	candidates, err := s.store.FindRetryCandidates(ctx, s.cfg.MaxRetries, s.cfg.RetryDelay, s.cfg.BatchSize)
	if err != nil {
		return SweepReport{}, fmt.Errorf("finding retry candidates: %w", err)
	}

	report := SweepReport{Processed: len(candidates)}
	for _, entry := range candidates {
		outcome := s.attempt(ctx, entry)
		switch {
		case outcome == nil:
			report.Succeeded++
		case entry.RetryCount+1 >= s.cfg.MaxRetries:
			report.PermanentFailures++
		}
	}

	if report.Processed > 0 {
		s.logger.Info().
			Int("processed", report.Processed).
			Int("succeeded", report.Succeeded).
			Int("permanent_failures", report.PermanentFailures).
			Msg("retry sweep completed")
	}
	return report, nil
}

/* attempt replays one failed entry and records the result on it.
 * Returns the routing error, nil on success. The stored event type is
 * authoritative; the raw payload is re-normalized only to recover the
 * handler data
 */
func (s *Scheduler) attempt(ctx context.Context, entry webhook.LogEntry) error {
	routeErr := s.route(ctx, entry)
	if routeErr == nil {
		if err := s.store.IncrementRetry(ctx, entry.ID, webhook.Success, ""); err != nil {
			s.logger.Error().Err(err).Str("entry_id", entry.ID).Msg("recording retry success")
		}
		s.logger.Info().Str("entry_id", entry.ID).Str("event", entry.Event).Msg("webhook retry succeeded")
		return nil
	}

	message := routeErr.Error()
	if entry.RetryCount+1 >= s.cfg.MaxRetries {
		message = fmt.Sprintf("Permanent failure after %d retries: %v", s.cfg.MaxRetries, routeErr)
		s.logger.Error().Str("entry_id", entry.ID).Str("event", entry.Event).Msg("webhook retries exhausted")
	}
	if err := s.store.IncrementRetry(ctx, entry.ID, webhook.Error, message); err != nil {
		s.logger.Error().Err(err).Str("entry_id", entry.ID).Msg("recording retry failure")
	}
	return routeErr
}

func (s *Scheduler) route(ctx context.Context, entry webhook.LogEntry) error {
	env, err := webhook.Normalize(entry.Payload)
	if err != nil {
		return fmt.Errorf("normalizing stored payload: %w", err)
	}

	handlerCtx, cancel := context.WithTimeout(ctx, s.cfg.HandlerTimeout)
	defer cancel()

	if _, err := s.router.Route(handlerCtx, entry.Event, env.Data); err != nil {
		return fmt.Errorf("routing event %s: %w", entry.Event, err)
	}
	return nil
}

// Cleanup removes success entries past the retention window
func (s *Scheduler) Cleanup(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.RetentionDays)
	deleted, err := s.store.CleanupOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up webhook log: %w", err)
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("webhook log cleaned up")
	}
	return deleted, nil
}

// Stats reports the current retry bookkeeping
func (s *Scheduler) Stats(ctx context.Context) (webhook.RetryStats, error) {
	return s.store.Stats(ctx, s.cfg.MaxRetries)
}
