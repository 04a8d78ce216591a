package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"barberly/database"
	"barberly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.DB().Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "barber_id", Value: 1}}},
		{Keys: bson.D{{Key: "appointment_time", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) Create(session *models.Session) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *MongoSessionRepo) GetByUser(userID string) ([]models.Session, error) {
	return r.find(bson.M{"user_id": userID})
}

func (r *MongoSessionRepo) GetByBarber(barberID string) ([]models.Session, error) {
	return r.find(bson.M{"barber_id": barberID})
}

func (r *MongoSessionRepo) find(query bson.M) ([]models.Session, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("session query failed: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := []models.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
