package userRepo

import (
	"context"
	"fmt"
	"time"

	"barberly/database"
	"barberly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.DB().Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tokenHash", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"_id": id})
}

func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	return r.findOne(bson.M{"tokenHash": tokenHash})
}

func (r *MongoUserRepo) findOne(query bson.M) (*models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var user models.User
	err := r.coll.FindOne(ctx, query).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.UserID == "" {
		user.UserID = user.ID
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}
