package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/textlens/internal/report"
	"codeberg.org/snonux/textlens/internal/sentiment"
	"codeberg.org/snonux/textlens/internal/translation"
)

// Settings is the resolved configuration: flags override environment,
// which overrides the config file.
type Settings struct {
	Output        string
	LogLevel      string
	StripMarkdown bool

	SourceLang          string
	TargetLang          string
	TranslationProvider string
	TranslationModel    string
	TranslationTimeout  time.Duration
	Cache               string
	CachePath           string
	CacheTTL            time.Duration
	ValkeyAddress       string
	ValkeyPassword      string

	SentimentProvider string
	SentimentModel    string
	SentimentTimeout  time.Duration

	Host string
	Port int
}

// DefaultCachePath is where the sqlite translation cache lives.
func DefaultCachePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "textlens", "translations.db")
}

// LoadSettings reads the current viper state.
func LoadSettings() Settings {
	s := Settings{
		Output:        viper.GetString("output"),
		LogLevel:      viper.GetString("log.level"),
		StripMarkdown: viper.GetBool("input.strip_markdown"),

		SourceLang:          viper.GetString("translation.source"),
		TargetLang:          viper.GetString("translation.target"),
		TranslationProvider: viper.GetString("translation.provider"),
		TranslationModel:    viper.GetString("translation.model"),
		TranslationTimeout:  viper.GetDuration("translation.timeout"),
		Cache:               viper.GetString("translation.cache"),
		CachePath:           viper.GetString("translation.cache_path"),
		CacheTTL:            viper.GetDuration("translation.cache_ttl"),
		ValkeyAddress:       viper.GetString("valkey.address"),
		ValkeyPassword:      viper.GetString("valkey.password"),

		SentimentProvider: viper.GetString("sentiment.provider"),
		SentimentModel:    viper.GetString("sentiment.model"),
		SentimentTimeout:  viper.GetDuration("sentiment.timeout"),

		Host: viper.GetString("server.host"),
		Port: viper.GetInt("server.port"),
	}

	if s.Output == "" {
		s.Output = report.FormatText
	}
	if s.SourceLang == "" {
		s.SourceLang = translation.DefaultSourceLanguage
	}
	if s.TargetLang == "" {
		s.TargetLang = translation.DefaultTargetLanguage
	}
	if s.TranslationProvider == "" {
		s.TranslationProvider = translation.Providers[0]
	}
	if s.TranslationTimeout <= 0 {
		s.TranslationTimeout = translation.DefaultTimeout
	}
	if s.Cache == "" {
		s.Cache = "none"
	}
	if s.CachePath == "" {
		s.CachePath = DefaultCachePath()
	}
	if s.ValkeyAddress == "" {
		s.ValkeyAddress = os.Getenv("VALKEY_INIT_ADDRESS")
	}
	if s.SentimentProvider == "" {
		s.SentimentProvider = sentiment.Scorers[0]
	}
	if s.SentimentTimeout <= 0 {
		s.SentimentTimeout = sentiment.DefaultTimeout
	}
	if s.Host == "" {
		s.Host = "localhost"
	}
	if s.Port == 0 {
		s.Port = 8080
	}

	return s
}

// Validate rejects settings no command can run with.
func (s Settings) Validate() error {
	if err := report.ValidateFormat(s.Output); err != nil {
		return err
	}
	return translation.ValidateLanguages(s.SourceLang, s.TargetLang)
}
