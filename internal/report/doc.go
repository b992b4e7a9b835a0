// Package report renders analysis results as a styled terminal report, JSON
// or YAML.
package report
