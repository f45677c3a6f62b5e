// Package embedding turns text into fixed-length vectors.
package embedding

import (
	"context"
	"errors"
	"fmt"

	"llm-chatbot/pkg/config"
)

var (
	// ErrEmptyInput is returned when Embed is called with blank text.
	ErrEmptyInput = errors.New("embedding: input text is empty")
	// ErrNoEmbeddingInResponse is returned when the provider sends no vector back.
	ErrNoEmbeddingInResponse = errors.New("embedding: no embedding in response")
)

// Embedder returns the embedding of a single text. Every call on the same
// Embedder yields vectors of the same dimension.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

func New(cfg *config.EmbeddingConfig) (Embedder, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case "hashing":
		return NewHashingEmbedder(cfg.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Provider)
	}
}
