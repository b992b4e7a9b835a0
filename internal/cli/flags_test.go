package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "warn"},
		{"Output", flags.Output, "text"},
		{"Source", flags.Source, "es"},
		{"Target", flags.Target, "en"},
		{"Provider", flags.Provider, "google"},
		{"Cache", flags.Cache, "none"},
		{"Sentiment", flags.Sentiment, "vader"},
		{"Host", flags.Host, "localhost"},
		{"Port", flags.Port, 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"ListModels", flags.ListModels},
		{"ArchiveCache", flags.ArchiveCache},
		{"NoSpinner", flags.NoSpinner},
		{"StripMarkdown", flags.StripMarkdown},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"Model", flags.Model},
		{"SentimentModel", flags.SentimentModel},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %q, want empty", tt.name, tt.value)
			}
		})
	}

	if len(flags.Files) != 0 {
		t.Errorf("Files = %v, want empty", flags.Files)
	}
}
