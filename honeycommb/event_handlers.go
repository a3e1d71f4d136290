package honeycommb

import (
	"context"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
)

// Event event handlers, same upsert discipline as users. RSVP
// sub-events only move the counter on the parent event.
type eventHandlers struct {
	store EventStore
}

func (h eventHandlers) created(ctx context.Context, data map[string]any) (webhook.Result, error) {
	return h.upsert(ctx, data, "Event created")
}

func (h eventHandlers) updated(ctx context.Context, data map[string]any) (webhook.Result, error) {
	return h.upsert(ctx, data, "Event updated")
}

func (h eventHandlers) upsert(ctx context.Context, data map[string]any, message string) (webhook.Result, error) {
	id, ok := intField(data, "id")
	if !ok {
		return webhook.Result{}, fmt.Errorf("event payload missing id")
	}

	now := time.Now().UTC()
	event := Event{
		HCEventID:     id,
		Title:         strField(data, "title"),
		Description:   strField(data, "description"),
		Location:      strField(data, "location"),
		StartDate:     timePtrField(data, "start_date"),
		EndDate:       timePtrField(data, "end_date"),
		Status:        EventUpcoming,
		CreatedAt:     timeField(data, "created_at", now),
		UpdatedAt:     now,
		LastWebhookAt: now,
	}
	if err := h.store.Upsert(ctx, event); err != nil {
		return webhook.Result{}, fmt.Errorf("upserting event %d: %w", id, err)
	}
	return webhook.Processed(message), nil
}

func (h eventHandlers) destroyed(ctx context.Context, data map[string]any) (webhook.Result, error) {
	id, ok := intField(data, "id")
	if !ok {
		return webhook.Result{}, fmt.Errorf("event payload missing id")
	}
	if err := h.store.SetStatus(ctx, id, EventCancelled); err != nil {
		return webhook.Result{}, fmt.Errorf("cancelling event %d: %w", id, err)
	}
	return webhook.Processed("Event cancelled"), nil
}

/* rsvp returns the handler for one RSVP action. Created and updated
 * carry the new counter value; destroyed only confirms the parent
 * event saw webhook traffic
 */
func (h eventHandlers) rsvp(action string) Handler {
	return func(ctx context.Context, data map[string]any) (webhook.Result, error) {
		id, ok := intField(data, "event_id")
		if !ok {
			return webhook.Result{}, fmt.Errorf("rsvp payload missing event_id")
		}

		switch action {
		case "created", "updated":
			count, _ := intField(data, "rsvp_count")
			if err := h.store.SetRSVPCount(ctx, id, int(count)); err != nil {
				return webhook.Result{}, fmt.Errorf("setting rsvp count for event %d: %w", id, err)
			}
		default:
			if err := h.store.Touch(ctx, id); err != nil {
				return webhook.Result{}, fmt.Errorf("touching event %d: %w", id, err)
			}
		}
		return webhook.Processed(fmt.Sprintf("RSVP %s", action)), nil
	}
}
