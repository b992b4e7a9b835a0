// Package batch analyses several input files in sequence and summarizes the
// outcome per file.
package batch
