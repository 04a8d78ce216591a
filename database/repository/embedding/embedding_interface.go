package embeddingRepo

import "barberly/models"

// EmbeddingRepository defines methods for haircut embedding data access.
type EmbeddingRepository interface {
	// Upsert stores the embedding for a hosted image, replacing any
	// previous vector for the same image.
	Upsert(embedding *models.HaircutEmbedding) error
	// NearestNeighbors returns the k stored embeddings closest to the
	// given vector.
	NearestNeighbors(vector []float32, k int) ([]models.HaircutEmbedding, error)
}
