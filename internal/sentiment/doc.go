// Package sentiment scores English text for polarity and subjectivity.
//
// A Scorer is a single engine (VADER or an LLM); Gateway adds a per-call
// timeout and wraps every failure as *ScoringError.
package sentiment
