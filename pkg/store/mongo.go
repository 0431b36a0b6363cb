package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edenso/boardkit/pkg/board"
)

// mongoCollection is the collection name for board documents.
const mongoCollection = "boards"

// MongoStore persists boards in a MongoDB collection, one document per
// board, keyed by board id. Used by the hosted platform.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the MongoDB connection string (mongodb://...).
	URI string

	// Database is the database name (e.g., "boardkit").
	Database string

	// ConnectTimeout bounds the initial connection attempt. Zero means 10s.
	ConnectTimeout time.Duration
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	timeout := cfg.ConnectTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(mongoCollection),
	}, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Get retrieves a board by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*board.Board, error) {
	var b board.Board
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find board %s: %w", id, err)
	}
	return &b, nil
}

// Put upserts a board document.
func (s *MongoStore) Put(ctx context.Context, b *board.Board) error {
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": b.ID}, b, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store board %s: %w", b.ID, err)
	}
	return nil
}

// Delete removes a board document. Missing documents are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete board %s: %w", id, err)
	}
	return nil
}

// List returns boards owned by ownerID, newest first.
func (s *MongoStore) List(ctx context.Context, ownerID string) ([]*board.Board, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list boards for %s: %w", ownerID, err)
	}
	defer cur.Close(ctx)

	var out []*board.Board
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode boards: %w", err)
	}
	return out, nil
}
