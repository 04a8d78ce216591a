package barberRepo

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

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo creates a new instance of BarberRepository using MongoDB.
func NewMongoBarberRepo() BarberRepository {
	coll := database.DB().Collection("barbers")
	repo := &MongoBarberRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBarberRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
		{Keys: bson.D{{Key: "cost", Value: 1}}},
		{Keys: bson.D{{Key: "gender", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBarberRepo) GetByID(id string) (*models.Barber, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var barber models.Barber
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&barber)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber %s: %w", id, err)
	}
	return &barber, nil
}

// Search translates the filter set into a Mongo query. Name and hairstyle
// match as case-insensitive substrings; rating is a floor and cost a
// ceiling.
func (r *MongoBarberRepo) Search(filter models.BarberFilter) ([]models.Barber, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.MinRating > 0 {
		query["rating"] = bson.M{"$gte": filter.MinRating}
	}
	if filter.MaxCost > 0 && filter.MaxCost < models.DefaultMaxCost {
		query["cost"] = bson.M{"$lte": filter.MaxCost}
	}
	if filter.Gender != "" && filter.Gender != models.DefaultGender {
		query["gender"] = filter.Gender
	}
	if filter.Hairstyle != "" {
		query["hairstyles"] = bson.M{"$regex": filter.Hairstyle, "$options": "i"}
	}
	if filter.Neighborhood != "" {
		query["neighborhood"] = filter.Neighborhood
	}
	if filter.WillTravel != nil {
		query["will-travel"] = *filter.WillTravel
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, fmt.Errorf("barber search failed: %w", err)
	}
	defer cursor.Close(ctx)

	barbers := []models.Barber{}
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("failed to decode barbers: %w", err)
	}
	return barbers, nil
}

func (r *MongoBarberRepo) Create(barber *models.Barber) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if barber.ID == "" {
		barber.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, barber); err != nil {
		return fmt.Errorf("failed to create barber: %w", err)
	}
	return nil
}

func (r *MongoBarberRepo) Update(barber *models.Barber) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": barber.ID}, barber)
	if err != nil {
		return fmt.Errorf("failed to update barber %s: %w", barber.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("barber %s not found", barber.ID)
	}
	return nil
}

func (r *MongoBarberRepo) Delete(id string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete barber %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("barber %s not found", id)
	}
	return nil
}
