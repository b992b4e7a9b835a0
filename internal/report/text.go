package report

import (
	"fmt"
	"math"
	"strings"

	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/translation"
)

const (
	barWidth  = 20
	paneWidth = 78
	topWords  = 10
)

// Bar draws value, clamped to [0, 1], as a fixed-width bar.
func Bar(value float64, width int) string {
	value = math.Max(0, math.Min(1, value))
	filled := int(math.Round(value * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Text renders result as a terminal report.
func Text(result *processor.Result, opts Options) string {
	st := newStyles(opts.Color)
	var b strings.Builder

	b.WriteString(st.title.Render("Sentiment Analysis"))
	b.WriteString(" " + st.muted.Render(result.ID) + "\n\n")

	if opts.FilePreview {
		writePreview(&b, st, result)
	}
	writeScores(&b, st, result)
	writeWords(&b, st, result)
	writePanes(&b, st, result)
	writeSentences(&b, st, result)
	writeWarnings(&b, st, result)

	return b.String()
}

func writePreview(b *strings.Builder, st styles, r *processor.Result) {
	heading := "File content"
	if r.Origin != "" {
		heading = fmt.Sprintf("File content (%s)", r.Origin)
	}
	b.WriteString(st.heading.Render(heading) + "\n")
	b.WriteString(st.pane.Render(input.Preview(r.OriginalText, input.PreviewLength)) + "\n\n")
}

func writeScores(b *strings.Builder, st styles, r *processor.Result) {
	fmt.Fprintf(b, "  %-13s %s %+.2f  %s\n",
		"Sentiment",
		st.label(r.SentimentLabel).Render(fmt.Sprintf("%-8s", r.SentimentLabel)),
		r.Polarity,
		st.bar.Render(Bar((r.Polarity+1)/2, barWidth)))
	fmt.Fprintf(b, "  %-13s %s %5.2f  %s\n\n",
		"Subjectivity",
		st.label(r.SubjectivityLabel).Render(fmt.Sprintf("%-8s", r.SubjectivityLabel)),
		r.Subjectivity,
		st.bar.Render(Bar(r.Subjectivity, barWidth)))
}

func writeWords(b *strings.Builder, st styles, r *processor.Result) {
	b.WriteString(st.heading.Render("Top Words") + "\n")

	top := r.WordFrequency.Top(topWords)
	if len(top) == 0 {
		b.WriteString("  " + st.muted.Render("no words left after filtering") + "\n\n")
		return
	}

	width := 0
	for _, wc := range top {
		width = max(width, len([]rune(wc.Word)))
	}
	maxCount := float64(top[0].Count)
	for _, wc := range top {
		pad := strings.Repeat(" ", width-len([]rune(wc.Word)))
		fmt.Fprintf(b, "  %s%s %4d  %s\n", wc.Word, pad, wc.Count,
			st.bar.Render(Bar(float64(wc.Count)/maxCount, barWidth)))
	}
	b.WriteString("\n")
}

func writePanes(b *strings.Builder, st styles, r *processor.Result) {
	original := fmt.Sprintf("Original (%s)", translation.LanguageName(r.SourceLang))
	b.WriteString(st.heading.Render(original) + "\n")
	b.WriteString(st.pane.Render(r.OriginalText) + "\n")

	translated := fmt.Sprintf("Translated (%s)", translation.LanguageName(r.TargetLang))
	if !r.Translated {
		translated = "Translation unavailable, showing original"
	}
	b.WriteString(st.heading.Render(translated) + "\n")
	b.WriteString(st.pane.Render(r.TranslatedText) + "\n\n")
}

func writeSentences(b *strings.Builder, st styles, r *processor.Result) {
	scored := r.ScoredSentences()
	if len(scored) == 0 {
		return
	}

	b.WriteString(st.heading.Render("Sentences") + "\n")
	for i, pair := range scored {
		score := st.label(pair.Label).Render(fmt.Sprintf("%+.2f", pair.Polarity))
		fmt.Fprintf(b, "  %2d. %s %s  %s\n", i+1, sentiment.Emoji(pair.Label), score, pair.Original)
		fmt.Fprintf(b, "           %s\n", st.muted.Render("→ "+pair.Translated))
	}
	if rest := len(r.Sentences) - len(scored); rest > 0 {
		fmt.Fprintf(b, "  %s\n", st.muted.Render(fmt.Sprintf("... %d more sentence pairs not scored", rest)))
	}
	b.WriteString("\n")
}

func writeWarnings(b *strings.Builder, st styles, r *processor.Result) {
	for _, w := range r.Warnings {
		b.WriteString(st.warning.Render("⚠ "+w) + "\n")
	}
}
