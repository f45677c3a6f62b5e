package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"llm-chatbot/internal/models"
	"llm-chatbot/pkg/embedding"

	"go.uber.org/zap"
)

// DefaultFAQThreshold is the minimum cosine similarity for an FAQ answer.
const DefaultFAQThreshold = 0.7

// FAQIndex is the in-memory semantic index over the FAQ table. It is built
// once and read-only afterwards.
type FAQIndex struct {
	embedder  embedding.Embedder
	threshold float64
	entries   []*models.FAQEntry
	logger    *zap.Logger
}

func NewFAQIndex(embedder embedding.Embedder, threshold float64, logger *zap.Logger) *FAQIndex {
	return &FAQIndex{
		embedder:  embedder,
		threshold: threshold,
		logger:    logger,
	}
}

// Build embeds every entry with the index's embedder and replaces the index
// contents. All embeddings must share one dimension.
func (idx *FAQIndex) Build(ctx context.Context, entries []*models.FAQEntry) error {
	built := make([]*models.FAQEntry, 0, len(entries))
	dim := -1

	for _, entry := range entries {
		vec, err := idx.embedder.Embed(ctx, entry.IndexText())
		if err != nil {
			return fmt.Errorf("failed to embed faq %d: %w", entry.ID, err)
		}
		if dim >= 0 && len(vec) != dim {
			return fmt.Errorf("faq %d embedding has dimension %d, want %d", entry.ID, len(vec), dim)
		}
		dim = len(vec)

		e := *entry
		e.Embedding = vec
		built = append(built, &e)
	}

	idx.entries = built
	idx.logger.Info("FAQ index built",
		zap.Int("entries", len(built)),
		zap.Int("dimension", dim),
	)
	return nil
}

func (idx *FAQIndex) Len() int {
	return len(idx.entries)
}

// Match returns the entry most similar to query and its cosine similarity.
// It returns a nil entry when the index is empty or the query has nothing to
// embed.
func (idx *FAQIndex) Match(ctx context.Context, query string) (*models.FAQEntry, float64, error) {
	if len(idx.entries) == 0 {
		return nil, 0, nil
	}

	vec, err := idx.embedder.Embed(ctx, query)
	if errors.Is(err, embedding.ErrEmptyInput) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to embed query: %w", err)
	}

	var (
		best      *models.FAQEntry
		bestScore = math.Inf(-1)
	)
	for _, entry := range idx.entries {
		if len(entry.Embedding) != len(vec) {
			return nil, 0, fmt.Errorf("query embedding has dimension %d, index has %d", len(vec), len(entry.Embedding))
		}
		if score := cosineSimilarity(vec, entry.Embedding); score > bestScore {
			best, bestScore = entry, score
		}
	}

	return best, bestScore, nil
}

// Lookup returns the stored answer of the best match when its similarity
// reaches the threshold.
func (idx *FAQIndex) Lookup(ctx context.Context, query string) (string, bool, error) {
	entry, score, err := idx.Match(ctx, query)
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}

	idx.logger.Debug("FAQ best match",
		zap.String("question", entry.Question),
		zap.Float64("score", score),
		zap.Float64("threshold", idx.threshold),
	)

	if score < idx.threshold {
		return "", false, nil
	}
	return entry.Answer, true, nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
