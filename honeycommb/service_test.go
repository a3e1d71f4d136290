package honeycommb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"github.com/dxbevents/honeycommb-bridge/honeycommb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStats(t *testing.T) {
	ctx := context.Background()

	t.Run("success - aggregates counts from both mirrors", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		events := mocks.NewEventStore(t)
		users.On("Count", ctx).Return(int64(150), nil)
		users.On("CountByStatus", ctx, honeycommb.UserActive).Return(int64(120), nil)
		events.On("Count", ctx).Return(int64(40), nil)
		events.On("CountByStatus", ctx, honeycommb.EventUpcoming).Return(int64(8), nil)

		stats, err := honeycommb.NewService(users, events).Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, honeycommb.CommunityStats{
			TotalUsers:     150,
			ActiveUsers:    120,
			TotalEvents:    40,
			UpcomingEvents: 8,
		}, stats)
	})

	t.Run("error - user count failure", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		events := mocks.NewEventStore(t)
		users.On("Count", ctx).Return(int64(0), errors.New("server selection timeout"))

		_, err := honeycommb.NewService(users, events).Stats(ctx)

		require.ErrorContains(t, err, "counting users")
	})
}

func TestServiceUpcomingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("success - bounded listing", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		events := mocks.NewEventStore(t)
		listed := []honeycommb.Event{{HCEventID: 1, Title: "Kickoff"}}
		events.On("Upcoming", ctx, honeycommb.UpcomingLimit).Return(listed, nil)

		got, err := honeycommb.NewService(users, events).UpcomingEvents(ctx)

		require.NoError(t, err)
		assert.Equal(t, listed, got)
	})

	t.Run("error - store failure", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		events := mocks.NewEventStore(t)
		events.On("Upcoming", ctx, honeycommb.UpcomingLimit).Return(nil, errors.New("cursor error"))

		_, err := honeycommb.NewService(users, events).UpcomingEvents(ctx)

		require.ErrorContains(t, err, "listing upcoming events")
	})
}
