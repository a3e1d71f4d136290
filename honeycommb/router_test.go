package honeycommb_test

import (
	"context"
	"testing"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/honeycommb/mocks"
	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*honeycommb.Router, *mocks.UserStore, *mocks.EventStore) {
	users := mocks.NewUserStore(t)
	events := mocks.NewEventStore(t)
	return honeycommb.NewRouter(users, events, zerolog.Nop()), users, events
}

func TestRouterRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("success - unknown event is ignored, not an error", func(t *testing.T) {
		router, _, _ := newRouter(t)

		result, err := router.Route(ctx, "community.renamed", map[string]any{"id": float64(1)})

		require.NoError(t, err)
		assert.Equal(t, webhook.StatusIgnored, result.Status)
		assert.Equal(t, "Event community.renamed not handled", result.Message)
	})

	t.Run("success - stub groups acknowledge without persisting", func(t *testing.T) {
		router, _, _ := newRouter(t)

		stubs := map[string]string{
			honeycommb.PostCreated:             "Post events not implemented yet",
			honeycommb.PostFlagged:             "Post events not implemented yet",
			honeycommb.PaymentCompleted:        "Payment events not implemented yet",
			honeycommb.SubscriptionRestored:    "Payment events not implemented yet",
			honeycommb.GroupJoinRequestCreated: "Group events not implemented yet",
			honeycommb.GroupChatMessageCreated: "Group events not implemented yet",
			honeycommb.LikeCreated:             "Interaction events not implemented yet",
			honeycommb.FollowDestroyed:         "Interaction events not implemented yet",
		}
		for event, message := range stubs {
			result, err := router.Route(ctx, event, map[string]any{"id": float64(9)})

			require.NoError(t, err)
			assert.Equal(t, webhook.StatusIgnored, result.Status)
			assert.Equal(t, message, result.Message)
		}
	})

	t.Run("success - every taxonomy event has a handler", func(t *testing.T) {
		router, _, _ := newRouter(t)

		all := []string{
			honeycommb.UserCreated, honeycommb.UserUpdated, honeycommb.UserDestroyed,
			honeycommb.UserApproved, honeycommb.UserFlagged,
			honeycommb.PostCreated, honeycommb.PostUpdated, honeycommb.PostDestroyed,
			honeycommb.PostFeatured, honeycommb.PostFlagged,
			honeycommb.EventCreated, honeycommb.EventUpdated, honeycommb.EventDestroyed,
			honeycommb.EventRSVPCreated, honeycommb.EventRSVPUpdated, honeycommb.EventRSVPDestroyed,
			honeycommb.PaymentCompleted, honeycommb.PaymentFailed,
			honeycommb.SubscriptionUpdated, honeycommb.SubscriptionCanceled, honeycommb.SubscriptionRestored,
			honeycommb.GroupJoinRequestCreated, honeycommb.GroupJoinRequestUpdated, honeycommb.GroupChatMessageCreated,
			honeycommb.LikeCreated, honeycommb.LikeDestroyed,
			honeycommb.FollowCreated, honeycommb.FollowDestroyed,
		}
		for _, event := range all {
			assert.True(t, router.Known(event), "no handler for %s", event)
		}
		assert.False(t, router.Known("unknown"))
	})
}
