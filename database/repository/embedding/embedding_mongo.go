package embeddingRepo

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

// MongoEmbeddingRepo implements EmbeddingRepository using a MongoDB
// Atlas search index over the embedding field.
type MongoEmbeddingRepo struct {
	coll *mongo.Collection
}

// NewMongoEmbeddingRepo creates a new instance of EmbeddingRepository using MongoDB.
func NewMongoEmbeddingRepo() EmbeddingRepository {
	coll := database.DB().Collection("haircut_embeddings")
	return &MongoEmbeddingRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmbeddingRepo) Upsert(embedding *models.HaircutEmbedding) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if embedding.ID == "" {
		embedding.ID = uuid.New().String()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"image": embedding.Image}, embedding, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert embedding for %s: %w", embedding.Image, err)
	}
	return nil
}

// NearestNeighbors runs a knnBeta search over the embedding index.
func (r *MongoEmbeddingRepo) NearestNeighbors(vector []float32, k int) ([]models.HaircutEmbedding, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$search", Value: bson.D{
			{Key: "knnBeta", Value: bson.D{
				{Key: "vector", Value: vector},
				{Key: "path", Value: "embedding"},
				{Key: "k", Value: k},
			}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.HaircutEmbedding
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode embeddings: %w", err)
	}
	return results, nil
}
