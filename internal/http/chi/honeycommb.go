package chi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/webhook"
)

// RetryReporter exposes the retry bookkeeping the admin API serves
type RetryReporter interface {
	Stats(ctx context.Context) (webhook.RetryStats, error)
}

// eventResponse represents a mirrored community event in the API
type eventResponse struct {
	HCEventID   int64      `json:"hc_event_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
	RSVPCount   int        `json:"rsvp_count"`
}

// getWebhookLogs handles GET /api/honeycommb/webhook-logs
func getWebhookLogs(ingestService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a number"})
				return
			}
			limit = parsed
		}

		entries, err := ingestService.Logs(r.Context(), limit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		result := make([]logEntryResponse, 0, len(entries))
		for _, entry := range entries {
			result = append(result, logEntryResponse{
				ID:           entry.ID,
				Event:        entry.Event,
				Outcome:      entry.Outcome.String(),
				ErrorMessage: entry.ErrorMessage,
				RetryCount:   entry.RetryCount,
				LastRetryAt:  entry.LastRetryAt,
				ReceivedAt:   entry.ReceivedAt,
				ProcessedAt:  entry.ProcessedAt,
				SourceIP:     entry.SourceIP,
				UserAgent:    entry.UserAgent,
			})
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// getEvents handles GET /api/honeycommb/events
func getEvents(reporter honeycommb.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events, err := reporter.UpcomingEvents(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		result := make([]eventResponse, 0, len(events))
		for _, event := range events {
			result = append(result, eventResponse{
				HCEventID:   event.HCEventID,
				Title:       event.Title,
				Description: event.Description,
				Location:    event.Location,
				StartDate:   event.StartDate,
				EndDate:     event.EndDate,
				Status:      string(event.Status),
				RSVPCount:   event.RSVPCount,
			})
		}
		writeJSON(w, http.StatusOK, result)
	})
}

// getStats handles GET /api/honeycommb/stats
func getStats(reporter honeycommb.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := reporter.Stats(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}

// getRetryStats handles GET /api/honeycommb/retry-stats
func getRetryStats(retryReporter RetryReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := retryReporter.Stats(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}
