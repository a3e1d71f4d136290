package webhook

import (
	"encoding/json"
	"fmt"
)

// EventUnknown is the normalized type for payloads in no recognized shape
const EventUnknown = "unknown"

/* Envelope is the normalized form of an inbound payload
 * Honeycommb does not deliver a uniform shape: some deployments send an
 * explicit {event, data} envelope, others send the domain object bare
 * with its own type field. Normalization is a tagged-union decision made
 * in one place instead of shape sniffing scattered through handlers
 */
type Envelope struct {
	Event string
	Data  map[string]any
}

/* Normalize parses a raw webhook body into an Envelope
 * The rules, in order:
 *   {"event": "...", "data": {...}}  ->  as sent
 *   {"type": "user", "id": 7, ...}   ->  "user.updated", data = whole object
 *   {"type": "user", ...}            ->  "user.created", data = whole object
 *   any other JSON object            ->  "unknown", data = whole object
 * A body that is not a JSON object is a normalization error
 */
func Normalize(raw []byte) (Envelope, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Envelope{}, fmt.Errorf("parsing webhook body: %w", err)
	}

	if event, ok := payload["event"].(string); ok && event != "" {
		if data, ok := payload["data"].(map[string]any); ok {
			return Envelope{Event: event, Data: data}, nil
		}
	}

	if typ, ok := payload["type"].(string); ok && typ != "" {
		action := "created"
		if _, hasID := payload["id"]; hasID {
			action = "updated"
		}
		return Envelope{Event: fmt.Sprintf("%s.%s", typ, action), Data: payload}, nil
	}

	return Envelope{Event: EventUnknown, Data: payload}, nil
}
