package store

import (
	"context"
	goerrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

// MongoStore persists puzzles in a MongoDB collection, keyed by puzzle ID.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "puzzlecut"
	Collection string // defaults to "puzzles"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "puzzlecut"
	}
	if cfg.Collection == "" {
		cfg.Collection = "puzzles"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to ping MongoDB")
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put stores a puzzle, upserting on the puzzle ID.
func (s *MongoStore) Put(ctx context.Context, p *puzzle.Puzzle) error {
	filter := bson.M{"_id": p.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, filter, p, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to store puzzle")
	}
	return nil
}

// Get retrieves a puzzle by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	var p puzzle.Puzzle
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if goerrors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to load puzzle")
	}
	return &p, nil
}

// Delete removes a puzzle by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to delete puzzle")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the IDs of all stored puzzles.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to list puzzles")
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to decode puzzle ID")
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to iterate puzzles")
	}
	return ids, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
