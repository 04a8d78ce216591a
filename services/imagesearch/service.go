// Package imagesearch finds barbers whose example work resembles an
// uploaded reference picture.
package imagesearch

import (
	"context"
	"fmt"

	barberRepo "barberly/database/repository/barber"
	embeddingRepo "barberly/database/repository/embedding"
	"barberly/models"

	"go.uber.org/zap"
)

// DefaultNeighbors is how many nearest example images a search considers.
const DefaultNeighbors = 5

// ImageSearchService matches an uploaded image against stored haircut
// example embeddings.
type ImageSearchService interface {
	Search(ctx context.Context, mimeSubtype string, data []byte) ([]models.Barber, error)
}

// DefaultImageSearchService is the production ImageSearchService.
type DefaultImageSearchService struct {
	Embedder   Embedder
	Embeddings embeddingRepo.EmbeddingRepository
	Barbers    barberRepo.BarberRepository
	Logger     *zap.Logger
}

// Search embeds the uploaded image, finds the nearest stored example
// images, and resolves them to their barbers. Each barber appears once,
// nearest match first.
func (s *DefaultImageSearchService) Search(ctx context.Context, mimeSubtype string, data []byte) ([]models.Barber, error) {
	vector, err := s.Embedder.EmbedImage(ctx, mimeSubtype, data)
	if err != nil {
		return nil, fmt.Errorf("failed to embed uploaded image: %w", err)
	}

	neighbors, err := s.Embeddings.NearestNeighbors(vector, DefaultNeighbors)
	if err != nil {
		return nil, fmt.Errorf("nearest neighbor search failed: %w", err)
	}

	seen := make(map[string]bool)
	matches := []models.Barber{}
	for _, n := range neighbors {
		if seen[n.BarberID] {
			continue
		}
		seen[n.BarberID] = true

		barber, err := s.Barbers.GetByID(n.BarberID)
		if err != nil {
			s.Logger.Warn("failed to resolve matched barber",
				zap.String("barberID", n.BarberID),
				zap.Error(err),
			)
			continue
		}
		if barber == nil {
			// Embedding outlived its barber record; skip it.
			continue
		}
		matches = append(matches, *barber)
	}
	return matches, nil
}
