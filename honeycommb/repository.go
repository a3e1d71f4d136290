package honeycommb

import "context"

/* Store interfaces are written for the handlers that use them.
 * Upserts must be idempotent under at-least-once delivery: applying the
 * same event twice yields the same end state as applying it once
 */

// UserStore persists the user mirror
type UserStore interface {
	/* Upsert inserts or refreshes a user by its platform id.
	 * Mutable fields are always written; status and created time are
	 * only set when the row is first inserted, so a late update cannot
	 * clobber a moderation status
	 */
	Upsert(ctx context.Context, user User) error
	// SetStatus updates exactly the status field; missing rows are a no-op
	SetStatus(ctx context.Context, hcUserID int64, status UserStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status UserStatus) (int64, error)
}

// EventStore persists the event mirror
type EventStore interface {
	// Upsert inserts or refreshes an event by its platform id
	Upsert(ctx context.Context, event Event) error
	// SetStatus updates exactly the status field; missing rows are a no-op
	SetStatus(ctx context.Context, hcEventID int64, status EventStatus) error
	/* SetRSVPCount writes the RSVP counter without touching other
	 * event fields, inserting a skeleton row when the RSVP arrives
	 * before its event
	 */
	SetRSVPCount(ctx context.Context, hcEventID int64, count int) error
	// Touch refreshes the webhook timestamps only
	Touch(ctx context.Context, hcEventID int64) error
	// Upcoming lists upcoming events, soonest first
	Upcoming(ctx context.Context, limit int) ([]Event, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status EventStatus) (int64, error)
}
