package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/honeycommb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const eventsCollection = "honeycommb_events"

// MongoDB implementation of honeycommb.EventStore, same upsert
// discipline as the user mirror.
type EventStore struct {
	collection *mongo.Collection
}

// NewEventStore creates an event mirror store on the given database
func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{collection: db.Collection(eventsCollection)}
}

type eventDocument struct {
	HCEventID     int64                  `bson:"hc_event_id"`
	Title         string                 `bson:"title,omitempty"`
	Description   string                 `bson:"description,omitempty"`
	Location      string                 `bson:"location,omitempty"`
	StartDate     *time.Time             `bson:"start_date,omitempty"`
	EndDate       *time.Time             `bson:"end_date,omitempty"`
	Status        honeycommb.EventStatus `bson:"status"`
	Capacity      int                    `bson:"capacity"`
	RSVPCount     int                    `bson:"rsvp_count"`
	Featured      bool                   `bson:"featured"`
	Flagged       bool                   `bson:"flagged"`
	CreatedAt     time.Time              `bson:"created_at"`
	UpdatedAt     time.Time              `bson:"updated_at"`
	LastWebhookAt time.Time              `bson:"last_webhook_at"`
}

func toEvent(doc eventDocument) honeycommb.Event {
	return honeycommb.Event{
		HCEventID:     doc.HCEventID,
		Title:         doc.Title,
		Description:   doc.Description,
		Location:      doc.Location,
		StartDate:     doc.StartDate,
		EndDate:       doc.EndDate,
		Status:        doc.Status,
		Capacity:      doc.Capacity,
		RSVPCount:     doc.RSVPCount,
		Featured:      doc.Featured,
		Flagged:       doc.Flagged,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		LastWebhookAt: doc.LastWebhookAt,
	}
}

// EnsureIndexes creates the unique platform id index and the upcoming
// listing index
func (s *EventStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "hc_event_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "start_date", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("creating event indexes: %w", err)
	}
	return nil
}

// Upsert inserts or refreshes an event. Status and created_at are only
// set on first insert so an update replay cannot resurrect a cancelled
// event.
func (s *EventStore) Upsert(ctx context.Context, event honeycommb.Event) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":           event.Title,
			"description":     event.Description,
			"location":        event.Location,
			"start_date":      event.StartDate,
			"end_date":        event.EndDate,
			"updated_at":      now,
			"last_webhook_at": now,
		},
		"$setOnInsert": bson.M{
			"hc_event_id": event.HCEventID,
			"status":      event.Status,
			"created_at":  event.CreatedAt,
		},
	}

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_event_id": event.HCEventID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upserting event %d: %w", event.HCEventID, err)
	}
	return nil
}

// SetStatus updates the status of an existing event; missing rows are a no-op
func (s *EventStore) SetStatus(ctx context.Context, hcEventID int64, status honeycommb.EventStatus) error {
	now := time.Now().UTC()
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_event_id": hcEventID},
		bson.M{"$set": bson.M{
			"status":          status,
			"updated_at":      now,
			"last_webhook_at": now,
		}},
	)
	if err != nil {
		return fmt.Errorf("setting event %d status: %w", hcEventID, err)
	}
	return nil
}

/* SetRSVPCount writes the RSVP counter. Upserted so an RSVP delivered
 * before its event creates a skeleton row the later event.created
 * fills in
 */
func (s *EventStore) SetRSVPCount(ctx context.Context, hcEventID int64, count int) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"rsvp_count":      count,
			"updated_at":      now,
			"last_webhook_at": now,
		},
		"$setOnInsert": bson.M{
			"hc_event_id": hcEventID,
			"status":      honeycommb.EventUpcoming,
			"created_at":  now,
		},
	}

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_event_id": hcEventID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("setting event %d rsvp count: %w", hcEventID, err)
	}
	return nil
}

// Touch refreshes the webhook timestamps of an existing event
func (s *EventStore) Touch(ctx context.Context, hcEventID int64) error {
	now := time.Now().UTC()
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_event_id": hcEventID},
		bson.M{"$set": bson.M{
			"updated_at":      now,
			"last_webhook_at": now,
		}},
	)
	if err != nil {
		return fmt.Errorf("touching event %d: %w", hcEventID, err)
	}
	return nil
}

// Get retrieves a mirrored event by platform id
func (s *EventStore) Get(ctx context.Context, hcEventID int64) (honeycommb.Event, error) {
	var doc eventDocument
	err := s.collection.FindOne(ctx, bson.M{"hc_event_id": hcEventID}).Decode(&doc)
	if err != nil {
		return honeycommb.Event{}, fmt.Errorf("getting event %d: %w", hcEventID, err)
	}
	return toEvent(doc), nil
}

// Upcoming lists upcoming events with the soonest start date first
func (s *EventStore) Upcoming(ctx context.Context, limit int) ([]honeycommb.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "start_date", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{"status": honeycommb.EventUpcoming}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []eventDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding upcoming events: %w", err)
	}

	events := make([]honeycommb.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, toEvent(doc))
	}
	return events, nil
}

// Count returns the total number of mirrored events
func (s *EventStore) Count(ctx context.Context) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of mirrored events in the given status
func (s *EventStore) CountByStatus(ctx context.Context, status honeycommb.EventStatus) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("counting events by status: %w", err)
	}
	return count, nil
}
