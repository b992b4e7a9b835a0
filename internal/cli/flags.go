package cli

import (
	"codeberg.org/snonux/textlens/internal/report"
	"codeberg.org/snonux/textlens/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	LogLevel     string
	Output       string
	ListModels   bool
	ArchiveCache bool
	NoSpinner    bool

	// Input flags
	Files         []string
	BatchFile     string
	StripMarkdown bool

	// Translation flags
	Source   string
	Target   string
	Provider string
	Model    string
	Cache    string

	// Sentiment flags
	Sentiment      string
	SentimentModel string

	// Server flags
	Host string
	Port int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:  "warn",
		Output:    report.FormatText,
		Source:    translation.DefaultSourceLanguage,
		Target:    translation.DefaultTargetLanguage,
		Provider:  "google",
		Cache:     "none",
		Sentiment: "vader",
		Host:      "localhost",
		Port:      8080,
	}
}
