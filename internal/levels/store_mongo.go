package levels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists level configurations with a unique index on the level
// number.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongo constructs a Mongo-backed level store and ensures the unique
// level index exists.
func NewMongo(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection("levelconfigs")

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "level", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create level index: %w", err)
	}

	return &MongoStore{coll: coll}, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*Level, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "level", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Level
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	return out, nil
}

func (s *MongoStore) FindByNumber(ctx context.Context, number int) (*Level, error) {
	var level Level
	err := s.coll.FindOne(ctx, bson.M{"level": number}).Decode(&level)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find level %d: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("find level %d: %w", number, err)
	}
	return &level, nil
}

func (s *MongoStore) Create(ctx context.Context, level *Level) error {
	if level.ID == "" {
		level.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	level.CreatedAt = now
	level.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, level)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create level %d: %w", level.Number, ErrDuplicateLevel)
		}
		return fmt.Errorf("create level %d: %w", level.Number, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, number int, payload *ConfigPayload) (*Level, error) {
	update := bson.M{"$set": bson.M{
		"backgroundColor": payload.BackgroundColor,
		"dot1Color":       payload.Dot1Color,
		"dot2Color":       payload.Dot2Color,
		"dot3Color":       payload.Dot3Color,
		"dot4Color":       payload.Dot4Color,
		"dot5Color":       payload.Dot5Color,
		"logoUrl":         payload.LogoURL,
		"updatedAt":       time.Now().UTC(),
	}}

	var level Level
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"level": number}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&level)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("update level %d: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("update level %d: %w", number, err)
	}
	return &level, nil
}

func (s *MongoStore) Delete(ctx context.Context, number int) (*Level, error) {
	var level Level
	err := s.coll.FindOneAndDelete(ctx, bson.M{"level": number}).Decode(&level)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("delete level %d: %w", number, ErrNotFound)
		}
		return nil, fmt.Errorf("delete level %d: %w", number, err)
	}
	return &level, nil
}
