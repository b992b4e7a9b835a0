package text

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// MinWordLength is the shortest token, in runes, that survives filtering.
const MinWordLength = 3

// wordPattern matches runs of letters, digits and underscores in any script.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// WordCount is a single row of a frequency table.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Frequency is a word frequency table ordered by descending count. Words
// with equal counts keep the order in which they first appeared.
type Frequency []WordCount

// Tokenize lower-cases s and returns every word token in order, unfiltered.
func Tokenize(s string) []string {
	return wordPattern.FindAllString(strings.ToLower(s), -1)
}

// FilterTokens drops stop words and tokens shorter than MinWordLength.
func FilterTokens(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < MinWordLength || IsStopWord(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// CountWords tokenizes s, filters the tokens and ranks them by occurrence.
// It returns the ranking together with the filtered token sequence.
func CountWords(s string) (Frequency, []string) {
	words := FilterTokens(Tokenize(s))

	index := make(map[string]int, len(words))
	freq := make(Frequency, 0, len(words))
	for _, w := range words {
		if i, ok := index[w]; ok {
			freq[i].Count++
			continue
		}
		index[w] = len(freq)
		freq = append(freq, WordCount{Word: w, Count: 1})
	}

	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].Count > freq[j].Count
	})

	return freq, words
}

// Top returns at most n leading entries.
func (f Frequency) Top(n int) Frequency {
	if n < 0 || n >= len(f) {
		return f
	}
	return f[:n]
}

// Total is the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, wc := range f {
		total += wc.Count
	}
	return total
}

// Count returns the count recorded for word, or zero.
func (f Frequency) Count(word string) int {
	for _, wc := range f {
		if wc.Word == word {
			return wc.Count
		}
	}
	return 0
}
