package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the repositories rely on: the unique
// email and sitter-user constraints plus the owner/sitter lookup paths.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := []struct {
		collection string
		models     []mongo.IndexModel
	}{
		{usersCollection, []mongo.IndexModel{
			{Keys: keyAsc("email"), Options: unique},
		}},
		{sittersCollection, []mongo.IndexModel{
			{Keys: keyAsc("user"), Options: unique},
			{Keys: keyAsc("services")},
			{Keys: keyAsc("location")},
		}},
		{petsCollection, []mongo.IndexModel{
			{Keys: keyAsc("owner")},
		}},
		{bookingsCollection, []mongo.IndexModel{
			{Keys: keyAsc("owner")},
			{Keys: keyAsc("sitter")},
		}},
		{postsCollection, []mongo.IndexModel{
			{Keys: keyAsc("is_public")},
			{Keys: keyAsc("tags")},
		}},
	}

	for _, spec := range specs {
		if _, err := db.Collection(spec.collection).Indexes().CreateMany(ctx, spec.models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", spec.collection, err)
		}
	}
	return nil
}

func keyAsc(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

