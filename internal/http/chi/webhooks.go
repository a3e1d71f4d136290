package chi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
)

/* HTTP layer DTOs for the webhook API
 * Separate from domain entities to avoid leaking internal structure
 */

// signatureHeader is the HMAC header Honeycommb signs each delivery with
const signatureHeader = "X-Honeycommb-Signature"

// webhookResponse is the acknowledgement sent back to the platform
type webhookResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Result  webhook.Result `json:"result"`
}

// errorResponse is the body of every non-2xx answer
type errorResponse struct {
	Error string `json:"error"`
}

// logEntryResponse represents one webhook log entry in the API
type logEntryResponse struct {
	ID           string     `json:"id"`
	Event        string     `json:"event"`
	Outcome      string     `json:"outcome"`
	ErrorMessage string     `json:"error_message,omitempty"`
	RetryCount   int        `json:"retry_count"`
	LastRetryAt  *time.Time `json:"last_retry,omitempty"`
	ReceivedAt   time.Time  `json:"received_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
	SourceIP     string     `json:"source_ip,omitempty"`
	UserAgent    string     `json:"user_agent,omitempty"`
}

// postWebhook handles POST /api/webhooks/honeycommb
func postWebhook(ingestService webhook.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The raw bytes feed signature verification; the body must not
		// be parsed before the signature is checked
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
			return
		}
		defer r.Body.Close()

		meta := webhook.RequestMeta{
			SourceIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		}

		ingested, err := ingestService.Ingest(r.Context(), body, r.Header.Get(signatureHeader), meta)
		if errors.Is(err, webhook.ErrInvalidSignature) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid signature"})
			return
		}
		if err != nil {
			// The entry is already logged for retry; the platform only
			// needs to know this delivery did not complete
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Webhook processing failed"})
			return
		}

		writeJSON(w, http.StatusOK, webhookResponse{
			Success: true,
			Message: fmt.Sprintf("Webhook %s processed successfully", ingested.Event),
			Result:  ingested.Result,
		})
	})
}
