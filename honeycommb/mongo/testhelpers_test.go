//go:build integration

package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	testcontainersmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/* Test Helpers for MongoDB Integration Tests
 * Following the pattern from: https://eltonminetto.dev/post/2024-02-15-using-test-helpers/
 */

// MongoContainer holds the MongoDB testcontainer and an open database
type MongoContainer struct {
	Container *testcontainersmongo.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
}

// SetupMongoContainer creates and starts a MongoDB testcontainer
func SetupMongoContainer(t *testing.T, ctx context.Context) (*MongoContainer, func()) {
	t.Helper()

	mongoContainer, err := testcontainersmongo.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start MongoDB container")

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get MongoDB connection string")

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")
	require.NoError(t, client.Ping(connectCtx, nil), "failed to ping MongoDB")

	mc := &MongoContainer{
		Container: mongoContainer,
		Client:    client,
		DB:        client.Database("honeycommb_mirror_test"),
	}

	cleanup := func() {
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("failed to disconnect MongoDB client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate MongoDB container: %v", err)
		}
	}

	return mc, cleanup
}
