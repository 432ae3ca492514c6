package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dotback/internal/auth/models"
)

// MongoStore persists admins in a MongoDB collection with a unique index on
// email. The index is what makes concurrent seeding safe across processes.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongo constructs a Mongo-backed admin store and ensures the unique
// email index exists.
func NewMongo(ctx context.Context, db *mongo.Database) (*MongoStore, error) {
	coll := db.Collection("admins")

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create admin email index: %w", err)
	}

	return &MongoStore{coll: coll}, nil
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find by email: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("find by email: %w", err)
	}
	return &admin, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find by id: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &admin, nil
}

func (s *MongoStore) Create(ctx context.Context, admin *models.Admin) error {
	admin.Email = models.NormalizeEmail(admin.Email)
	if admin.ID == "" {
		admin.ID = primitive.NewObjectID().Hex()
	}
	if admin.Name == "" {
		admin.Name = models.DefaultAdminName
	}
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create admin: %w", ErrDuplicateEmail)
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}
