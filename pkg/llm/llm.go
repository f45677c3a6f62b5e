// Package llm talks to the text-generation model behind the chatbot.
package llm

import (
	"context"
	"fmt"

	"llm-chatbot/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Generator turns a single prompt into the model's completion text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the generator selected by cfg.Provider, rate limited when
// cfg.RateLimit is positive.
func New(cfg *config.LLMConfig, gigaCfg *config.GigaChatConfig, logger *zap.Logger) (Generator, func() error, error) {
	var (
		gen     Generator
		closeFn = func() error { return nil }
	)

	switch cfg.Provider {
	case "ollama":
		gen = NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Timeout, logger)
	case "gigachat":
		client, err := NewGigaChatClient(context.Background(), gigaCfg, logger)
		if err != nil {
			return nil, nil, err
		}
		gen, closeFn = client, client.Close
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}

	if cfg.RateLimit > 0 {
		gen = WithRateLimit(gen, rate.NewLimiter(rate.Limit(cfg.RateLimit), 1))
		logger.Info("LLM rate limit enabled", zap.Float64("requests_per_second", cfg.RateLimit))
	}

	return gen, closeFn, nil
}

type rateLimited struct {
	next    Generator
	limiter *rate.Limiter
}

// WithRateLimit makes every Generate call wait for a limiter token first.
func WithRateLimit(next Generator, limiter *rate.Limiter) Generator {
	return &rateLimited{next: next, limiter: limiter}
}

func (r *rateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return r.next.Generate(ctx, prompt)
}
