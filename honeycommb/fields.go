package honeycommb

import "time"

/* Payload field helpers. Webhook data arrives as generic JSON objects,
 * so numbers are float64 and timestamps are RFC 3339 strings
 */

func intField(data map[string]any, key string) (int64, bool) {
	switch v := data[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func strField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// timeField parses an RFC 3339 timestamp, falling back to fallback when
// the field is absent or unparseable
func timeField(data map[string]any, key string, fallback time.Time) time.Time {
	raw, ok := data[key].(string)
	if !ok || raw == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fallback
	}
	return t
}

// timePtrField is timeField for optional dates, nil when absent
func timePtrField(data map[string]any, key string) *time.Time {
	raw, ok := data[key].(string)
	if !ok || raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &t
}
