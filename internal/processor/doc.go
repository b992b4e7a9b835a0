// Package processor contains the core analysis pipeline. It translates the
// input text, scores the whole document, pairs original and translated
// sentences, scores the leading sentence pairs and ranks word frequencies.
// The translation and sentiment gateways are injected so the pipeline holds
// no process-wide state of its own.
package processor
