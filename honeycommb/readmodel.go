package honeycommb

import "time"

/* Local mirrors of Honeycommb platform entities, keyed by the
 * platform's numeric identifier. They are written exclusively by the
 * webhook event handlers and read elsewhere only for reporting.
 * Destroyed entities are soft-deleted via status so the mirror stays
 * queryable for audit and history
 */

// UserStatus is the lifecycle state of a mirrored community member
type UserStatus string

const (
	UserActive         UserStatus = "active"
	UserInactive       UserStatus = "inactive"
	UserPending        UserStatus = "pending"
	UserApprovedStatus UserStatus = "approved"
	UserFlaggedStatus  UserStatus = "flagged"
)

// User mirrors a Honeycommb community member
type User struct {
	HCUserID      int64
	Name          string
	Email         string
	Username      string
	Status        UserStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastWebhookAt time.Time
}

// EventStatus is the lifecycle state of a mirrored community event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Event mirrors a Honeycommb community event
type Event struct {
	HCEventID     int64
	Title         string
	Description   string
	Location      string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        EventStatus
	Capacity      int
	RSVPCount     int
	Featured      bool
	Flagged       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastWebhookAt time.Time
}

// Post mirrors a Honeycommb post. Post events are currently
// acknowledged without persisting, so nothing writes this yet.
type Post struct {
	HCPostID      int64
	AuthorID      int64
	Title         string
	Content       string
	Featured      bool
	Flagged       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastWebhookAt time.Time
}

// Group mirrors a Honeycommb group. Group events are currently
// acknowledged without persisting.
type Group struct {
	HCGroupID     int64
	Name          string
	Description   string
	MemberCount   int
	IsPrivate     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastWebhookAt time.Time
}

// PaymentStatus is the state of a mirrored payment
type PaymentStatus string

const (
	PaymentPending         PaymentStatus = "pending"
	PaymentCompletedStatus PaymentStatus = "completed"
	PaymentFailedStatus    PaymentStatus = "failed"
	PaymentRefunded        PaymentStatus = "refunded"
)

// Payment mirrors a Honeycommb payment. Payment events are currently
// acknowledged without persisting.
type Payment struct {
	HCPaymentID   int64
	UserID        int64
	Amount        float64
	Currency      string
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastWebhookAt time.Time
}
