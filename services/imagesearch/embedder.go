package imagesearch

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Embedder turns image bytes into a vector.
type Embedder interface {
	EmbedImage(ctx context.Context, mimeSubtype string, data []byte) ([]float32, error)
}

// GeminiEmbedder computes image embeddings through the Gemini API.
type GeminiEmbedder struct {
	model *genai.EmbeddingModel
}

func NewGeminiEmbedder(apiKey string) (*GeminiEmbedder, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiEmbedder{model: client.EmbeddingModel("embedding-001")}, nil
}

func (g *GeminiEmbedder) EmbedImage(ctx context.Context, mimeSubtype string, data []byte) ([]float32, error) {
	res, err := g.model.EmbedContent(ctx, genai.ImageData(mimeSubtype, data))
	if err != nil {
		return nil, fmt.Errorf("gemini embedding error: %w", err)
	}
	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, fmt.Errorf("gemini returned an empty embedding")
	}
	return res.Embedding.Values, nil
}
