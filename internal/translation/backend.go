package translation

import (
	"context"
	"fmt"
)

// Providers lists the accepted values of BackendConfig.Provider.
var Providers = []string{"google", "openai", "gemini", "anthropic", "none"}

// BackendConfig selects and configures a provider.
type BackendConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewBackend builds the backend named by cfg.Provider.
func NewBackend(ctx context.Context, cfg BackendConfig) (Backend, error) {
	switch cfg.Provider {
	case "", "google":
		return NewGoogleTranslator(cfg.BaseURL), nil
	case "openai":
		return NewOpenAITranslator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "gemini":
		t, err := NewGeminiTranslator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "anthropic":
		return NewAnthropicTranslator(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	case "none":
		return IdentityTranslator{}, nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q (want one of %v)", cfg.Provider, Providers)
	}
}
