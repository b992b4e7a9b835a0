package sentiment

import "fmt"

// Scorers lists the accepted values of ScorerConfig.Provider.
var Scorers = []string{"vader", "openai"}

// ScorerConfig selects and configures a scorer.
type ScorerConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewScorer builds the scorer named by cfg.Provider.
func NewScorer(cfg ScorerConfig) (Scorer, error) {
	switch cfg.Provider {
	case "", "vader":
		return NewVaderScorer(), nil
	case "openai":
		return NewOpenAIScorer(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q (want one of %v)", cfg.Provider, Scorers)
	}
}
