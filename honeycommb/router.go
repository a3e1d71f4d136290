package honeycommb

import (
	"context"
	"fmt"

	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/rs/zerolog"
)

// Handler processes one normalized webhook event
type Handler func(ctx context.Context, data map[string]any) (webhook.Result, error)

/* Router is the dispatch table from event type to handler. The table
 * is built once at construction and never mutated afterwards, so
 * routing needs no synchronization
 */
type Router struct {
	handlers map[string]Handler
	logger   zerolog.Logger
}

// NewRouter builds the dispatch table over the given mirror stores
func NewRouter(users UserStore, events EventStore, logger zerolog.Logger) *Router {
	u := userHandlers{store: users}
	e := eventHandlers{store: events}
	r := &Router{logger: logger}

	r.handlers = map[string]Handler{
		UserCreated:   u.created,
		UserUpdated:   u.updated,
		UserDestroyed: u.destroyed,
		UserApproved:  u.approved,
		UserFlagged:   u.flagged,

		EventCreated:       e.created,
		EventUpdated:       e.updated,
		EventDestroyed:     e.destroyed,
		EventRSVPCreated:   e.rsvp("created"),
		EventRSVPUpdated:   e.rsvp("updated"),
		EventRSVPDestroyed: e.rsvp("destroyed"),

		/* The remaining groups are received and acknowledged but
		 * intentionally not persisted yet. Their ignored result is
		 * distinct from an unknown event type
		 */
		PostCreated:   r.stub("Post events not implemented yet"),
		PostUpdated:   r.stub("Post events not implemented yet"),
		PostDestroyed: r.stub("Post events not implemented yet"),
		PostFeatured:  r.stub("Post events not implemented yet"),
		PostFlagged:   r.stub("Post events not implemented yet"),

		PaymentCompleted:     r.stub("Payment events not implemented yet"),
		PaymentFailed:        r.stub("Payment events not implemented yet"),
		SubscriptionUpdated:  r.stub("Payment events not implemented yet"),
		SubscriptionCanceled: r.stub("Payment events not implemented yet"),
		SubscriptionRestored: r.stub("Payment events not implemented yet"),

		GroupJoinRequestCreated: r.stub("Group events not implemented yet"),
		GroupJoinRequestUpdated: r.stub("Group events not implemented yet"),
		GroupChatMessageCreated: r.stub("Group events not implemented yet"),

		LikeCreated:     r.stub("Interaction events not implemented yet"),
		LikeDestroyed:   r.stub("Interaction events not implemented yet"),
		FollowCreated:   r.stub("Interaction events not implemented yet"),
		FollowDestroyed: r.stub("Interaction events not implemented yet"),
	}
	return r
}

// Route dispatches an event to its handler. Unknown event types are
// not an error so unrecognized platform events never fail the webhook.
func (r *Router) Route(ctx context.Context, event string, data map[string]any) (webhook.Result, error) {
	handler, ok := r.handlers[event]
	if !ok {
		r.logger.Warn().Str("event", event).Msg("unhandled webhook event")
		return webhook.Ignored(fmt.Sprintf("Event %s not handled", event)), nil
	}
	return handler(ctx, data)
}

// Known reports whether the event type is part of the taxonomy
func (r *Router) Known(event string) bool {
	_, ok := r.handlers[event]
	return ok
}

func (r *Router) stub(message string) Handler {
	return func(_ context.Context, data map[string]any) (webhook.Result, error) {
		r.logger.Info().Interface("data", data).Msg(message)
		return webhook.Ignored(message), nil
	}
}
