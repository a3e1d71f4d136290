package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dxbevents/honeycommb-bridge/webhook"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/* MongoDB implementation of webhook.LogStore
 * One document per received webhook, mutated in place by retry attempts.
 * Outcome and retry fields for a single entry are always written in one
 * update keyed by _id, so concurrent attempts cannot interleave
 */

const collectionName = "webhook_logs"

type LogStore struct {
	collection *mongo.Collection
}

// NewLogStore creates a log store on the given database
func NewLogStore(db *mongo.Database) *LogStore {
	return &LogStore{collection: db.Collection(collectionName)}
}

/* logDocument is the persisted shape of a webhook.LogEntry
 * The payload is kept as the raw request bytes so a retry replays
 * exactly what was authenticated at first receipt
 */
type logDocument struct {
	ID           string     `bson:"_id"`
	Event        string     `bson:"event"`
	Payload      []byte     `bson:"payload"`
	Outcome      string     `bson:"outcome"`
	ErrorMessage string     `bson:"error_message,omitempty"`
	RetryCount   int        `bson:"retry_count"`
	LastRetryAt  *time.Time `bson:"last_retry,omitempty"`
	ReceivedAt   time.Time  `bson:"received_at"`
	ProcessedAt  *time.Time `bson:"processed_at,omitempty"`
	SourceIP     string     `bson:"source_ip,omitempty"`
	UserAgent    string     `bson:"user_agent,omitempty"`
}

func toDocument(entry webhook.LogEntry) logDocument {
	return logDocument{
		ID:           entry.ID,
		Event:        entry.Event,
		Payload:      entry.Payload,
		Outcome:      entry.Outcome.String(),
		ErrorMessage: entry.ErrorMessage,
		RetryCount:   entry.RetryCount,
		LastRetryAt:  entry.LastRetryAt,
		ReceivedAt:   entry.ReceivedAt,
		ProcessedAt:  entry.ProcessedAt,
		SourceIP:     entry.SourceIP,
		UserAgent:    entry.UserAgent,
	}
}

func toEntry(doc logDocument) webhook.LogEntry {
	return webhook.LogEntry{
		ID:           doc.ID,
		Event:        doc.Event,
		Payload:      doc.Payload,
		Outcome:      webhook.NewOutcome(doc.Outcome),
		ErrorMessage: doc.ErrorMessage,
		RetryCount:   doc.RetryCount,
		LastRetryAt:  doc.LastRetryAt,
		ReceivedAt:   doc.ReceivedAt,
		ProcessedAt:  doc.ProcessedAt,
		SourceIP:     doc.SourceIP,
		UserAgent:    doc.UserAgent,
	}
}

// EnsureIndexes creates the indexes the sweep and listing queries rely on
func (s *LogStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "outcome", Value: 1}, {Key: "retry_count", Value: 1}, {Key: "last_retry", Value: 1}}},
		{Keys: bson.D{{Key: "received_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating webhook log indexes: %w", err)
	}
	return nil
}

// Create persists a new log entry and returns its ID
func (s *LogStore) Create(ctx context.Context, entry webhook.LogEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ReceivedAt.IsZero() {
		entry.ReceivedAt = time.Now().UTC()
	}

	if _, err := s.collection.InsertOne(ctx, toDocument(entry)); err != nil {
		return "", fmt.Errorf("storing webhook log entry: %w", err)
	}
	return entry.ID, nil
}

// Get retrieves a log entry by ID
func (s *LogStore) Get(ctx context.Context, id string) (webhook.LogEntry, error) {
	var doc logDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return webhook.LogEntry{}, webhook.ErrNotFound
	}
	if err != nil {
		return webhook.LogEntry{}, fmt.Errorf("getting webhook log entry: %w", err)
	}
	return toEntry(doc), nil
}

// Latest returns the most recent entries, newest first
func (s *LogStore) Latest(ctx context.Context, limit int) ([]webhook.LogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "received_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing webhook log entries: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []logDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding webhook log entries: %w", err)
	}

	entries := make([]webhook.LogEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, toEntry(doc))
	}
	return entries, nil
}

// MarkOutcome records the result of a processing attempt
func (s *LogStore) MarkOutcome(ctx context.Context, id string, outcome webhook.Outcome, errorMessage string) error {
	if err := outcome.Validate(); err != nil {
		return fmt.Errorf("validating outcome: %w", err)
	}

	set := bson.M{
		"outcome":      outcome.String(),
		"processed_at": time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if errorMessage != "" {
		set["error_message"] = errorMessage
	} else {
		update["$unset"] = bson.M{"error_message": ""}
	}

	result, err := s.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("marking webhook outcome: %w", err)
	}
	if result.MatchedCount == 0 {
		return webhook.ErrNotFound
	}
	return nil
}

/* IncrementRetry records a retry attempt in a single update: retry
 * count bump, retry timestamp and this attempt's outcome together
 */
func (s *LogStore) IncrementRetry(ctx context.Context, id string, outcome webhook.Outcome, errorMessage string) error {
	if err := outcome.Validate(); err != nil {
		return fmt.Errorf("validating outcome: %w", err)
	}

	now := time.Now().UTC()
	set := bson.M{
		"outcome":      outcome.String(),
		"last_retry":   now,
		"processed_at": now,
	}
	update := bson.M{
		"$inc": bson.M{"retry_count": 1},
		"$set": set,
	}
	if errorMessage != "" {
		set["error_message"] = errorMessage
	} else {
		update["$unset"] = bson.M{"error_message": ""}
	}

	result, err := s.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("incrementing webhook retry: %w", err)
	}
	if result.MatchedCount == 0 {
		return webhook.ErrNotFound
	}
	return nil
}

/* FindRetryCandidates returns failed entries eligible for another
 * attempt. An entry that has never been retried becomes eligible once
 * its receipt is older than retryDelay; a retried entry once its last
 * retry is. Bounded to batchSize, oldest first
 */
func (s *LogStore) FindRetryCandidates(ctx context.Context, maxRetries int, retryDelay time.Duration, batchSize int) ([]webhook.LogEntry, error) {
	cutoff := time.Now().UTC().Add(-retryDelay)

	filter := bson.M{
		"outcome":     webhook.Error.String(),
		"retry_count": bson.M{"$lt": maxRetries},
		"$or": bson.A{
			bson.M{"last_retry": bson.M{"$exists": false}, "received_at": bson.M{"$lt": cutoff}},
			bson.M{"last_retry": bson.M{"$lt": cutoff}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "received_at", Value: 1}}).
		SetLimit(int64(batchSize))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("finding retry candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []logDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding retry candidates: %w", err)
	}

	entries := make([]webhook.LogEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, toEntry(doc))
	}
	return entries, nil
}

// CleanupOlderThan removes success entries strictly older than cutoff.
// Error entries are preserved at any age for manual inspection.
func (s *LogStore) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{
		"outcome":      webhook.Success.String(),
		"processed_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("cleaning up webhook log entries: %w", err)
	}
	return result.DeletedCount, nil
}

// Stats aggregates retry bookkeeping grouped by outcome
func (s *LogStore) Stats(ctx context.Context, maxRetries int) (webhook.RetryStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":         "$outcome",
			"count":       bson.M{"$sum": 1},
			"avg_retries": bson.M{"$avg": "$retry_count"},
			"max_retried": bson.M{"$max": "$retry_count"},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return webhook.RetryStats{}, fmt.Errorf("aggregating webhook stats: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Outcome    string  `bson:"_id"`
		Count      int64   `bson:"count"`
		AvgRetries float64 `bson:"avg_retries"`
		MaxRetried int     `bson:"max_retried"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return webhook.RetryStats{}, fmt.Errorf("decoding webhook stats: %w", err)
	}

	stats := webhook.RetryStats{MaxRetries: maxRetries}
	for _, g := range groups {
		stats.ByOutcome = append(stats.ByOutcome, webhook.OutcomeStats{
			Outcome:    g.Outcome,
			Count:      g.Count,
			AvgRetries: g.AvgRetries,
			MaxRetried: g.MaxRetried,
		})
	}

	failedFilter := bson.M{"outcome": webhook.Error.String()}
	stats.TotalFailed, err = s.collection.CountDocuments(ctx, failedFilter)
	if err != nil {
		return webhook.RetryStats{}, fmt.Errorf("counting failed webhooks: %w", err)
	}

	stats.PendingRetries, err = s.collection.CountDocuments(ctx, bson.M{
		"outcome":     webhook.Error.String(),
		"retry_count": bson.M{"$lt": maxRetries},
	})
	if err != nil {
		return webhook.RetryStats{}, fmt.Errorf("counting pending retries: %w", err)
	}

	stats.Exhausted, err = s.collection.CountDocuments(ctx, bson.M{
		"outcome":     webhook.Error.String(),
		"retry_count": bson.M{"$gte": maxRetries},
	})
	if err != nil {
		return webhook.RetryStats{}, fmt.Errorf("counting exhausted retries: %w", err)
	}

	return stats, nil
}

// Close disconnects the underlying client
func (s *LogStore) Close(ctx context.Context) error {
	return s.collection.Database().Client().Disconnect(ctx)
}
