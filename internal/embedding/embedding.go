// Package embedding provides a pluggable interface for text embedding providers.
package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/rcliao/sukoon/internal/config"
	"github.com/rcliao/sukoon/internal/logger"
)

// Vector is a float32 embedding vector.
type Vector = []float32

// Embedder generates embedding vectors from text. EmbedBatch returns one
// vector per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, text string) (Vector, error)
	EmbedBatch(ctx context.Context, texts []string) ([]Vector, error)
	Dims() int
	Name() string
}

// CosineSimilarity computes cosine similarity between two vectors.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineDistance is 1 - cosine similarity, clamped to be non-negative.
func CosineDistance(a, b Vector) float64 {
	return math.Max(0, 1-CosineSimilarity(a, b))
}

// New builds the configured embedder, wrapped with a sticky local fallback
// unless the fallback is "none" or the primary is already local.
func New(cfg config.EmbeddingConfig) (Embedder, error) {
	primary, err := newProvider(cfg.Provider, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Fallback == "none" || cfg.Fallback == cfg.Provider {
		return primary, nil
	}
	secondary, err := newProvider(cfg.Fallback, cfg)
	if err != nil {
		return nil, err
	}
	return NewFallback(primary, secondary), nil
}

// NewForCollection is New for searching an existing collection. The local
// hash embedder is sized to the collection's stored dimensionality, so a
// fallback can still query an index built by another provider. storedDims of
// 0 means the collection is empty and cfg.Dims applies.
func NewForCollection(cfg config.EmbeddingConfig, storedDims int) (Embedder, error) {
	if storedDims > 0 && storedDims != cfg.Dims {
		logger.Debug("sizing hash embedder to collection", "configured", cfg.Dims, "stored", storedDims)
		cfg.Dims = storedDims
	}
	return New(cfg)
}

func newProvider(name string, cfg config.EmbeddingConfig) (Embedder, error) {
	switch name {
	case "openai":
		return NewOpenAIEmbedder(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout), nil
	case "ollama":
		return NewOllamaEmbedder("", cfg.OllamaModel), nil
	case "hash":
		return NewHashEmbedder(cfg.Dims), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", name)
	}
}
