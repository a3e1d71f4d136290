package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
)

// RequestTimeout bounds every request handled by the router
const RequestTimeout = 60 * time.Second

// Handlers wires the full HTTP surface of the bridge
func Handlers(ingestService webhook.UseCase, reporter honeycommb.Reporter, retryReporter RetryReporter, metricsHandler http.Handler) *chi.Mux {
	// Logger
	logger := httplog.NewLogger("honeycommb-bridge", httplog.Options{
		JSON: true,
	})
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Method(http.MethodPost, "/api/webhooks/honeycommb", postWebhook(ingestService))
	r.Method(http.MethodGet, "/api/honeycommb/webhook-logs", getWebhookLogs(ingestService))
	r.Method(http.MethodGet, "/api/honeycommb/events", getEvents(reporter))
	r.Method(http.MethodGet, "/api/honeycommb/stats", getStats(reporter))
	r.Method(http.MethodGet, "/api/honeycommb/retry-stats", getRetryStats(retryReporter))

	r.Method(http.MethodGet, "/health", health())
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	return r
}

func health() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
