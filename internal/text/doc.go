// Package text holds the language-level building blocks of the analysis
// pipeline: word tokenization with stop-word filtering, frequency ranking
// and sentence splitting. Everything here is pure and allocation-light so it
// can be called per request without shared state.
package text
