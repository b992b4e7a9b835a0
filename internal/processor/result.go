package processor

import (
	"time"

	"codeberg.org/snonux/textlens/internal/text"
)

// SentencePair is an original sentence next to its translation. Only the
// leading MaxScoredSentences pairs carry a score.
type SentencePair struct {
	Original   string  `json:"original" yaml:"original"`
	Translated string  `json:"translated" yaml:"translated"`
	Polarity   float64 `json:"polarity" yaml:"polarity"`
	Label      string  `json:"label,omitempty" yaml:"label,omitempty" jsonschema:"enum=positive,enum=negative,enum=neutral"`
	Scored     bool    `json:"scored" yaml:"scored"`
}

// Result is the complete outcome of one analysis.
type Result struct {
	ID                string         `json:"id" yaml:"id" jsonschema:"format=uuid"`
	Polarity          float64        `json:"polarity" yaml:"polarity" jsonschema:"minimum=-1,maximum=1"`
	Subjectivity      float64        `json:"subjectivity" yaml:"subjectivity" jsonschema:"minimum=0,maximum=1"`
	SentimentLabel    string         `json:"sentiment_label" yaml:"sentiment_label" jsonschema:"enum=positive,enum=negative,enum=neutral"`
	SubjectivityLabel string         `json:"subjectivity_label" yaml:"subjectivity_label" jsonschema:"enum=high,enum=low"`
	Sentences         []SentencePair `json:"sentences" yaml:"sentences"`
	WordFrequency     text.Frequency `json:"word_frequency" yaml:"word_frequency"`
	Words             []string       `json:"words" yaml:"words"`
	OriginalText      string         `json:"original_text" yaml:"original_text"`
	TranslatedText    string         `json:"translated_text" yaml:"translated_text"`
	SourceLang        string         `json:"source_lang" yaml:"source_lang"`
	TargetLang        string         `json:"target_lang" yaml:"target_lang"`
	Origin            string         `json:"origin" yaml:"origin"`
	Provider          string         `json:"provider" yaml:"provider"`
	Translated        bool           `json:"translated" yaml:"translated"`
	Warnings          []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Duration          time.Duration  `json:"duration_ns" yaml:"duration"`
}

// ScoredSentences returns the pairs that carry a score.
func (r *Result) ScoredSentences() []SentencePair {
	n := 0
	for n < len(r.Sentences) && r.Sentences[n].Scored {
		n++
	}
	return r.Sentences[:n]
}

// HasWarnings reports whether the analysis completed in a degraded way.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
