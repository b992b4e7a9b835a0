package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Score holds polarity in [-1, 1] and subjectivity in [0, 1].
type Score struct {
	Polarity     float64 `json:"polarity" yaml:"polarity"`
	Subjectivity float64 `json:"subjectivity" yaml:"subjectivity"`
}

// Scorer is a single sentiment engine.
type Scorer interface {
	Name() string
	Score(ctx context.Context, text string) (Score, error)
}

// ScoringError reports that the engine could not score a text.
type ScoringError struct {
	Scorer string
	Err    error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("sentiment scoring via %s failed: %v", e.Scorer, e.Err)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// Gateway bounds each call to the scorer and normalizes its output.
type Gateway struct {
	scorer  Scorer
	timeout time.Duration
}

// NewGateway wraps scorer. A zero timeout selects DefaultTimeout.
func NewGateway(scorer Scorer, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{scorer: scorer, timeout: timeout}
}

// Scorer returns the engine name.
func (g *Gateway) Scorer() string {
	return g.scorer.Name()
}

// Score scores text. Any failure is returned as *ScoringError.
func (g *Gateway) Score(ctx context.Context, text string) (Score, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	s, err := g.scorer.Score(callCtx, text)
	if err != nil {
		slog.Warn("[Sentiment] Scoring failed",
			slog.String("scorer", g.scorer.Name()),
			slog.String("error", err.Error()))
		return Score{}, &ScoringError{Scorer: g.scorer.Name(), Err: err}
	}

	return Score{
		Polarity:     clamp(s.Polarity, -1, 1),
		Subjectivity: clamp(s.Subjectivity, 0, 1),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
