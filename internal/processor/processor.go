package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/text"
	"codeberg.org/snonux/textlens/internal/translation"
)

// MaxScoredSentences is how many sentence pairs are scored individually.
const MaxScoredSentences = 10

// Translator is satisfied by *translation.Gateway.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) translation.Result
}

// Scorer is satisfied by *sentiment.Gateway.
type Scorer interface {
	Score(ctx context.Context, text string) (sentiment.Score, error)
}

// Processor runs the analysis pipeline
type Processor struct {
	translator Translator
	scorer     Scorer
	now        func() time.Time
	newID      func() string
}

// NewProcessor creates a new pipeline around the shared gateways
func NewProcessor(translator Translator, scorer Scorer) *Processor {
	return &Processor{
		translator: translator,
		scorer:     scorer,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Analyze runs one request through the pipeline. Translation failures
// degrade to analysing the original text with a warning; scoring failures
// abort the request with a *sentiment.ScoringError.
func (p *Processor) Analyze(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}
	if err := translation.ValidateLanguages(req.SourceLang, req.TargetLang); err != nil {
		return nil, err
	}
	start := p.now()

	result := &Result{
		ID:           p.newID(),
		OriginalText: req.Text,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		Origin:       req.Origin,
	}

	// Translation strictly precedes every scoring call.
	tr := p.translator.Translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	result.Provider = tr.Provider
	result.Translated = tr.OK()
	result.TranslatedText = tr.TextOr(req.Text)
	if !tr.OK() {
		slog.Warn("[Processor] Translation failed, analysing original text",
			slog.String("origin", req.Origin),
			slog.String("error", tr.Err.Error()))
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Translation failed (%v); the analysis below uses the untranslated text.", tr.Err))
	}

	overall, err := p.scorer.Score(ctx, result.TranslatedText)
	if err != nil {
		return nil, err
	}
	result.Polarity = overall.Polarity
	result.Subjectivity = overall.Subjectivity
	result.SentimentLabel = sentiment.Label(overall.Polarity)
	result.SubjectivityLabel = sentiment.SubjectivityLabel(overall.Subjectivity)

	result.Sentences, err = p.pairSentences(ctx, req.Text, result.TranslatedText)
	if err != nil {
		return nil, err
	}

	result.WordFrequency, result.Words = text.CountWords(result.TranslatedText)
	result.Duration = p.now().Sub(start)

	slog.Debug("[Processor] Analysis complete",
		slog.String("id", result.ID),
		slog.Int("sentences", len(result.Sentences)),
		slog.Int("words", len(result.Words)),
		slog.Duration("elapsed", result.Duration))

	return result, nil
}

// pairSentences zips both sentence lists positionally, dropping the tail of
// the longer one, and scores the leading pairs.
func (p *Processor) pairSentences(ctx context.Context, original, translated string) ([]SentencePair, error) {
	originals := text.SplitSentences(original)
	translations := text.SplitSentences(translated)

	n := min(len(originals), len(translations))
	if len(originals) != len(translations) {
		slog.Debug("[Processor] Sentence counts differ, truncating",
			slog.Int("original", len(originals)),
			slog.Int("translated", len(translations)))
	}

	pairs := make([]SentencePair, n)
	for i := 0; i < n; i++ {
		pairs[i] = SentencePair{Original: originals[i], Translated: translations[i]}
		if i >= MaxScoredSentences {
			continue
		}

		s, err := p.scorer.Score(ctx, translations[i])
		if err != nil {
			return nil, err
		}
		pairs[i].Polarity = s.Polarity
		pairs[i].Label = sentiment.Label(s.Polarity)
		pairs[i].Scored = true
	}

	return pairs, nil
}
