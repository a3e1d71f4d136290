package honeycommb

import (
	"context"
	"fmt"
)

// UpcomingLimit bounds the public events listing
const UpcomingLimit = 20

// CommunityStats is the reporting view over the mirrors
type CommunityStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	TotalEvents    int64 `json:"totalEvents"`
	UpcomingEvents int64 `json:"upcomingEvents"`
}

// Reporter defines the read-only queries the HTTP layer serves
type Reporter interface {
	UpcomingEvents(ctx context.Context) ([]Event, error)
	Stats(ctx context.Context) (CommunityStats, error)
}

// Service answers reporting queries over the mirror stores
type Service struct {
	users  UserStore
	events EventStore
}

// NewService creates a reporting service over the mirror stores
func NewService(users UserStore, events EventStore) *Service {
	return &Service{users: users, events: events}
}

// UpcomingEvents lists upcoming mirrored events, soonest first
func (s *Service) UpcomingEvents(ctx context.Context) ([]Event, error) {
	events, err := s.events.Upcoming(ctx, UpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	return events, nil
}

// Stats aggregates community counts from the mirrors
func (s *Service) Stats(ctx context.Context) (CommunityStats, error) {
	var stats CommunityStats
	var err error

	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return CommunityStats{}, fmt.Errorf("counting users: %w", err)
	}
	if stats.ActiveUsers, err = s.users.CountByStatus(ctx, UserActive); err != nil {
		return CommunityStats{}, fmt.Errorf("counting active users: %w", err)
	}
	if stats.TotalEvents, err = s.events.Count(ctx); err != nil {
		return CommunityStats{}, fmt.Errorf("counting events: %w", err)
	}
	if stats.UpcomingEvents, err = s.events.CountByStatus(ctx, EventUpcoming); err != nil {
		return CommunityStats{}, fmt.Errorf("counting upcoming events: %w", err)
	}
	return stats, nil
}
