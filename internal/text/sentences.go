package text

import (
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits s on runs of '.', '!' and '?', trims each fragment
// and discards empty ones.
func SplitSentences(s string) []string {
	parts := sentenceBoundary.Split(s, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
