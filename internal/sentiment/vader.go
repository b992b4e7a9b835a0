package sentiment

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"
)

// VaderScorer scores text locally with the VADER lexicon. It never fails.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the built-in lexicon.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Name() string {
	return "vader"
}

// Score maps the compound score to polarity and the non-neutral share of the
// text to subjectivity.
func (v *VaderScorer) Score(ctx context.Context, text string) (Score, error) {
	if err := ctx.Err(); err != nil {
		return Score{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Score{}, nil
	}

	scores := v.analyzer.PolarityScores(text)
	subjectivity := 1 - scores.Neutral
	if scores.Neutral == 0 && scores.Positive == 0 && scores.Negative == 0 {
		subjectivity = 0
	}

	return Score{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(subjectivity, 0, 1),
	}, nil
}
