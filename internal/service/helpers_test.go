package service

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"llm-chatbot/internal/repository"
	"llm-chatbot/pkg/config"
	"llm-chatbot/pkg/database"
	"llm-chatbot/pkg/embedding"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), &config.DatabaseConfig{Driver: database.DriverSQLite, DSN: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.NewSeeder(db, zap.NewNop()).Reset(context.Background()))
	return db
}

// scriptedGenerator answers classification and SQL prompts with fixed text.
type scriptedGenerator struct {
	intent string
	sql    string
	err    error
	calls  atomic.Int32
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls.Add(1)
	if g.err != nil {
		return "", g.err
	}
	if strings.HasPrefix(prompt, "Classify") {
		return g.intent, nil
	}
	return g.sql, nil
}

// countingEmbedder wraps an embedder and counts calls.
type countingEmbedder struct {
	next  embedding.Embedder
	calls atomic.Int32
}

func (e *countingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.calls.Add(1)
	return e.next.Embed(ctx, text)
}
