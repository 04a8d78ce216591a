package imagesearch

import (
	"context"
	"errors"
	"testing"

	"barberly/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockEmbedder struct {
	embedFn func(ctx context.Context, mimeSubtype string, data []byte) ([]float32, error)
}

func (m *mockEmbedder) EmbedImage(ctx context.Context, mimeSubtype string, data []byte) ([]float32, error) {
	return m.embedFn(ctx, mimeSubtype, data)
}

type mockEmbeddingRepo struct {
	nearestFn func(vector []float32, k int) ([]models.HaircutEmbedding, error)
}

func (m *mockEmbeddingRepo) Upsert(*models.HaircutEmbedding) error { return nil }
func (m *mockEmbeddingRepo) NearestNeighbors(vector []float32, k int) ([]models.HaircutEmbedding, error) {
	return m.nearestFn(vector, k)
}

type mockBarberRepo struct {
	getByIDFn func(id string) (*models.Barber, error)
}

func (m *mockBarberRepo) GetByID(id string) (*models.Barber, error) { return m.getByIDFn(id) }
func (m *mockBarberRepo) Search(models.BarberFilter) ([]models.Barber, error) {
	return nil, nil
}
func (m *mockBarberRepo) Create(*models.Barber) error { return nil }
func (m *mockBarberRepo) Update(*models.Barber) error { return nil }
func (m *mockBarberRepo) Delete(string) error         { return nil }

func TestImageSearch(t *testing.T) {
	t.Run("deduplicates barbers across neighboring images", func(t *testing.T) {
		svc := &DefaultImageSearchService{
			Embedder: &mockEmbedder{
				embedFn: func(_ context.Context, subtype string, _ []byte) ([]float32, error) {
					assert.Equal(t, "jpeg", subtype)
					return []float32{0.1, 0.2}, nil
				},
			},
			Embeddings: &mockEmbeddingRepo{
				nearestFn: func(_ []float32, k int) ([]models.HaircutEmbedding, error) {
					assert.Equal(t, DefaultNeighbors, k)
					return []models.HaircutEmbedding{
						{BarberID: "b1", Image: "fade1.jpg"},
						{BarberID: "b1", Image: "fade2.jpg"},
						{BarberID: "b2", Image: "buzz.jpg"},
					}, nil
				},
			},
			Barbers: &mockBarberRepo{
				getByIDFn: func(id string) (*models.Barber, error) {
					return &models.Barber{ID: id}, nil
				},
			},
			Logger: zap.NewNop(),
		}

		matches, err := svc.Search(context.Background(), "jpeg", []byte("img"))
		assert.NoError(t, err)
		assert.Len(t, matches, 2)
		assert.Equal(t, "b1", matches[0].ID)
		assert.Equal(t, "b2", matches[1].ID)
	})

	t.Run("skips embeddings whose barber no longer exists", func(t *testing.T) {
		svc := &DefaultImageSearchService{
			Embedder: &mockEmbedder{
				embedFn: func(context.Context, string, []byte) ([]float32, error) {
					return []float32{0.1}, nil
				},
			},
			Embeddings: &mockEmbeddingRepo{
				nearestFn: func([]float32, int) ([]models.HaircutEmbedding, error) {
					return []models.HaircutEmbedding{
						{BarberID: "gone"},
						{BarberID: "b2"},
					}, nil
				},
			},
			Barbers: &mockBarberRepo{
				getByIDFn: func(id string) (*models.Barber, error) {
					if id == "gone" {
						return nil, nil
					}
					return &models.Barber{ID: id}, nil
				},
			},
			Logger: zap.NewNop(),
		}

		matches, err := svc.Search(context.Background(), "png", []byte("img"))
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, "b2", matches[0].ID)
	})

	t.Run("embedding failure aborts the search", func(t *testing.T) {
		svc := &DefaultImageSearchService{
			Embedder: &mockEmbedder{
				embedFn: func(context.Context, string, []byte) ([]float32, error) {
					return nil, errors.New("quota exceeded")
				},
			},
			Logger: zap.NewNop(),
		}

		_, err := svc.Search(context.Background(), "jpeg", []byte("img"))
		assert.Error(t, err)
	})
}
