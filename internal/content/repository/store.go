package repository

import (
	"context"
	"errors"
	"fmt"

	contenterrors "studio/internal/content/errors"
	"studio/pkg/config"
	mongodb "studio/pkg/db/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	GalleryCollection = "GalleryImages"
	FrameCollection   = "Frames"
	ReviewCollection  = "Reviews"
)

// Store is the persistence shared by the gallery, frame and review
// services. Records are listed newest first.
type Store[T any] interface {
	Insert(ctx context.Context, doc *T) (string, error)
	List(ctx context.Context, filter bson.M, limit int64) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string) error
}

type mongoStore[T any] struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoStore[T any](cfg *config.Config, collection string) Store[T] {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoStore[T]{
		cfg:        cfg,
		collection: db.Collection(collection),
	}
}

func (s *mongoStore[T]) Insert(ctx context.Context, doc *T) (string, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", s.collection.Name(), err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected id type %T in %s", result.InsertedID, s.collection.Name())
	}
	return oid.Hex(), nil
}

// List returns matching records, newest first. A limit of 0 means no limit.
func (s *mongoStore[T]) List(ctx context.Context, filter bson.M, limit int64) ([]T, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find in %s: %w", s.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.collection.Name(), err)
	}
	return docs, nil
}

func (s *mongoStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, s.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", contenterrors.ErrInvalidID, id)
	}

	var doc T
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find in %s: %w", s.collection.Name(), err)
	}
	return &doc, nil
}

func (s *mongoStore[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongodb.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", contenterrors.ErrInvalidID, id)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", s.collection.Name(), err)
	}
	if result.DeletedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}
