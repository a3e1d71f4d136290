package honeycommb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("success - user created upserts an active mirror row", func(t *testing.T) {
		router, users, _ := newRouter(t)
		users.On("Upsert", mock.Anything, mock.MatchedBy(func(u honeycommb.User) bool {
			return u.HCUserID == 42 &&
				u.Name == "Amina" &&
				u.Email == "amina@example.com" &&
				u.Username == "amina" &&
				u.Status == honeycommb.UserActive
		})).Return(nil)

		result, err := router.Route(ctx, honeycommb.UserCreated, map[string]any{
			"id":       float64(42),
			"name":     "Amina",
			"email":    "amina@example.com",
			"username": "amina",
		})

		require.NoError(t, err)
		assert.Equal(t, webhook.StatusProcessed, result.Status)
		assert.Equal(t, "User created", result.Message)
	})

	t.Run("success - user updated reuses the upsert path", func(t *testing.T) {
		router, users, _ := newRouter(t)
		users.On("Upsert", mock.Anything, mock.MatchedBy(func(u honeycommb.User) bool {
			return u.HCUserID == 42 && u.Name == "Amina K"
		})).Return(nil)

		result, err := router.Route(ctx, honeycommb.UserUpdated, map[string]any{
			"id":   float64(42),
			"name": "Amina K",
		})

		require.NoError(t, err)
		assert.Equal(t, "User updated", result.Message)
	})

	t.Run("success - moderation events only move the status", func(t *testing.T) {
		cases := []struct {
			event   string
			status  honeycommb.UserStatus
			message string
		}{
			{honeycommb.UserDestroyed, honeycommb.UserInactive, "User deactivated"},
			{honeycommb.UserApproved, honeycommb.UserApprovedStatus, "User approved"},
			{honeycommb.UserFlagged, honeycommb.UserFlaggedStatus, "User flagged"},
		}
		for _, tc := range cases {
			router, users, _ := newRouter(t)
			users.On("SetStatus", mock.Anything, int64(7), tc.status).Return(nil)

			result, err := router.Route(ctx, tc.event, map[string]any{"id": float64(7)})

			require.NoError(t, err)
			assert.Equal(t, webhook.StatusProcessed, result.Status)
			assert.Equal(t, tc.message, result.Message)
		}
	})

	t.Run("error - payload without id", func(t *testing.T) {
		router, _, _ := newRouter(t)

		_, err := router.Route(ctx, honeycommb.UserCreated, map[string]any{"name": "no id"})

		require.ErrorContains(t, err, "user payload missing id")
	})

	t.Run("error - store failure surfaces to the caller", func(t *testing.T) {
		router, users, _ := newRouter(t)
		users.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := router.Route(ctx, honeycommb.UserCreated, map[string]any{"id": float64(42)})

		require.ErrorContains(t, err, "creating user 42")
	})
}

func TestEventHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("success - event created upserts with parsed dates", func(t *testing.T) {
		router, _, events := newRouter(t)
		events.On("Upsert", mock.Anything, mock.MatchedBy(func(e honeycommb.Event) bool {
			return e.HCEventID == 100 &&
				e.Title == "Summer Meetup" &&
				e.Status == honeycommb.EventUpcoming &&
				e.StartDate != nil && e.StartDate.Year() == 2026
		})).Return(nil)

		result, err := router.Route(ctx, honeycommb.EventCreated, map[string]any{
			"id":         float64(100),
			"title":      "Summer Meetup",
			"start_date": "2026-07-01T18:00:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, webhook.StatusProcessed, result.Status)
		assert.Equal(t, "Event created", result.Message)
	})

	t.Run("success - event destroyed cancels instead of deleting", func(t *testing.T) {
		router, _, events := newRouter(t)
		events.On("SetStatus", mock.Anything, int64(100), honeycommb.EventCancelled).Return(nil)

		result, err := router.Route(ctx, honeycommb.EventDestroyed, map[string]any{"id": float64(100)})

		require.NoError(t, err)
		assert.Equal(t, "Event cancelled", result.Message)
	})

	t.Run("success - rsvp created moves the counter on the parent event", func(t *testing.T) {
		router, _, events := newRouter(t)
		events.On("SetRSVPCount", mock.Anything, int64(100), 12).Return(nil)

		result, err := router.Route(ctx, honeycommb.EventRSVPCreated, map[string]any{
			"event_id":   float64(100),
			"rsvp_count": float64(12),
		})

		require.NoError(t, err)
		assert.Equal(t, webhook.StatusProcessed, result.Status)
		assert.Equal(t, "RSVP created", result.Message)
	})

	t.Run("success - rsvp destroyed only touches the parent event", func(t *testing.T) {
		router, _, events := newRouter(t)
		events.On("Touch", mock.Anything, int64(100)).Return(nil)

		result, err := router.Route(ctx, honeycommb.EventRSVPDestroyed, map[string]any{
			"event_id": float64(100),
		})

		require.NoError(t, err)
		assert.Equal(t, "RSVP destroyed", result.Message)
	})

	t.Run("error - rsvp payload without event_id", func(t *testing.T) {
		router, _, _ := newRouter(t)

		_, err := router.Route(ctx, honeycommb.EventRSVPUpdated, map[string]any{"id": float64(5)})

		require.ErrorContains(t, err, "rsvp payload missing event_id")
	})
}
