package cli

import (
	"context"
	"fmt"
	"log/slog"

	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/translation"
)

// Pipeline owns the process-wide gateways and the processor built on them.
type Pipeline struct {
	Processor  *processor.Processor
	Translator *translation.Gateway
	Scorer     *sentiment.Gateway
}

// NewPipeline builds the gateways named in s. It is called once per process.
func NewPipeline(ctx context.Context, s Settings) (*Pipeline, error) {
	backend, err := translation.NewBackend(ctx, translation.BackendConfig{
		Provider: s.TranslationProvider,
		Model:    s.TranslationModel,
		APIKey:   apiKeyFor(s.TranslationProvider),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up translation: %w", err)
	}

	cache, err := translation.OpenCache(ctx, translation.CacheConfig{
		Kind:           s.Cache,
		Path:           s.CachePath,
		TTL:            s.CacheTTL,
		ValkeyAddress:  s.ValkeyAddress,
		ValkeyPassword: s.ValkeyPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open translation cache: %w", err)
	}

	opts := []translation.Option{translation.WithTimeout(s.TranslationTimeout)}
	if cache != nil {
		opts = append(opts, translation.WithCache(cache))
	}
	translator := translation.NewGateway(backend, opts...)

	scorer, err := sentiment.NewScorer(sentiment.ScorerConfig{
		Provider: s.SentimentProvider,
		Model:    s.SentimentModel,
		APIKey:   apiKeyFor(s.SentimentProvider),
	})
	if err != nil {
		translator.Close()
		return nil, fmt.Errorf("failed to set up sentiment scoring: %w", err)
	}
	scoring := sentiment.NewGateway(scorer, s.SentimentTimeout)

	slog.Debug("[Pipeline] Ready",
		slog.String("translation", backend.Name()),
		slog.String("cache", s.Cache),
		slog.String("sentiment", scorer.Name()))

	return &Pipeline{
		Processor:  processor.NewProcessor(translator, scoring),
		Translator: translator,
		Scorer:     scoring,
	}, nil
}

// Close releases the translation cache.
func (p *Pipeline) Close() error {
	return p.Translator.Close()
}

func apiKeyFor(provider string) string {
	switch provider {
	case "openai":
		return GetOpenAIKey()
	case "gemini":
		return GetGeminiKey()
	case "anthropic":
		return GetAnthropicKey()
	default:
		return ""
	}
}
