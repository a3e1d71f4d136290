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

const usersCollection = "honeycommb_users"

/* MongoDB implementation of honeycommb.UserStore
 * Documents are keyed by the platform user id through a unique index,
 * so a duplicate delivery lands on the same row
 */
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a user mirror store on the given database
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{collection: db.Collection(usersCollection)}
}

type userDocument struct {
	HCUserID      int64                 `bson:"hc_user_id"`
	Name          string                `bson:"name,omitempty"`
	Email         string                `bson:"email,omitempty"`
	Username      string                `bson:"username,omitempty"`
	Status        honeycommb.UserStatus `bson:"status"`
	CreatedAt     time.Time             `bson:"created_at"`
	UpdatedAt     time.Time             `bson:"updated_at"`
	LastWebhookAt time.Time             `bson:"last_webhook_at"`
}

func toUser(doc userDocument) honeycommb.User {
	return honeycommb.User{
		HCUserID:      doc.HCUserID,
		Name:          doc.Name,
		Email:         doc.Email,
		Username:      doc.Username,
		Status:        doc.Status,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
		LastWebhookAt: doc.LastWebhookAt,
	}
}

// EnsureIndexes creates the unique platform id index
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hc_user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}
	return nil
}

/* Upsert inserts or refreshes a user. Profile fields are always
 * written; status and created_at only on first insert, so an update
 * replay cannot undo a later moderation decision
 */
func (s *UserStore) Upsert(ctx context.Context, user honeycommb.User) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":            user.Name,
			"email":           user.Email,
			"username":        user.Username,
			"updated_at":      now,
			"last_webhook_at": now,
		},
		"$setOnInsert": bson.M{
			"hc_user_id": user.HCUserID,
			"status":     user.Status,
			"created_at": user.CreatedAt,
		},
	}

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_user_id": user.HCUserID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upserting user %d: %w", user.HCUserID, err)
	}
	return nil
}

// SetStatus updates the status of an existing user. A missing row is a
// no-op so a destroy for a user never mirrored does not fail the webhook.
func (s *UserStore) SetStatus(ctx context.Context, hcUserID int64, status honeycommb.UserStatus) error {
	now := time.Now().UTC()
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"hc_user_id": hcUserID},
		bson.M{"$set": bson.M{
			"status":          status,
			"updated_at":      now,
			"last_webhook_at": now,
		}},
	)
	if err != nil {
		return fmt.Errorf("setting user %d status: %w", hcUserID, err)
	}
	return nil
}

// Get retrieves a mirrored user by platform id
func (s *UserStore) Get(ctx context.Context, hcUserID int64) (honeycommb.User, error) {
	var doc userDocument
	err := s.collection.FindOne(ctx, bson.M{"hc_user_id": hcUserID}).Decode(&doc)
	if err != nil {
		return honeycommb.User{}, fmt.Errorf("getting user %d: %w", hcUserID, err)
	}
	return toUser(doc), nil
}

// Count returns the total number of mirrored users
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of mirrored users in the given status
func (s *UserStore) CountByStatus(ctx context.Context, status honeycommb.UserStatus) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("counting users by status: %w", err)
	}
	return count, nil
}
