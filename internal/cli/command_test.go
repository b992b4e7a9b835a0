package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/textlens/internal/processor"
)

// resetViper isolates a test from the global viper state.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "textlens [text...]" {
		t.Errorf("Expected Use to be 'textlens [text...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "sentiment analysis") {
		t.Errorf("Expected Short description to mention sentiment analysis")
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"log-level", true},
		{"output", true},
		{"source", true},
		{"target", true},
		{"provider", true},
		{"model", true},
		{"cache", true},
		{"sentiment", true},
		{"sentiment-model", true},
		{"strip-markdown", true},
		{"file", false},
		{"batch", false},
		{"no-spinner", false},
		{"list-models", false},
		{"archive-cache", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}

	for _, name := range []string{"analyze", "serve", "schema"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("Expected subcommand %s, got %v (%v)", name, sub, err)
		}
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	defaults := map[string]string{
		"output":    "text",
		"source":    "es",
		"target":    "en",
		"provider":  "google",
		"cache":     "none",
		"sentiment": "vader",
		"log-level": "warn",
	}
	for name, want := range defaults {
		flag := cmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}

	if short := cmd.PersistentFlags().ShorthandLookup("o"); short == nil || short.Name != "output" {
		t.Error("Expected -o to be the shorthand of --output")
	}
}

func TestInitConfig(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `translation:
  provider: openai
  source: fr
sentiment:
  provider: openai
openai:
  api_key: test-key`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if got := viper.GetString("translation.provider"); got != "openai" {
					t.Errorf("translation.provider = %q, want openai", got)
				}
				if got := viper.GetString("translation.source"); got != "fr" {
					t.Errorf("translation.source = %q, want fr", got)
				}
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
			check: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			InitConfig(tt.setupFunc(t))
			tt.check(t)

			// Test environment variable prefix
			t.Setenv("TEXTLENS_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			// Nested keys map to underscores
			t.Setenv("TEXTLENS_TRANSLATION_CACHE", "memory")
			if viper.GetString("translation.cache") != "memory" {
				t.Error("Nested environment variable not properly loaded")
			}
		})
	}
}

func TestGetOpenAIKey(t *testing.T) {
	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)

			// Set up environment
			t.Setenv("OPENAI_API_KEY", tt.envKey)

			// Set up config
			if tt.configKey != "" {
				viper.Set("openai.api_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAPIKeyFor(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-env")
	t.Setenv("ANTHROPIC_API_KEY", "")
	viper.Set("openai.api_key", "openai-config")
	viper.Set("anthropic.api_key", "anthropic-config")

	tests := map[string]string{
		"openai":    "openai-config",
		"gemini":    "gemini-env",
		"anthropic": "anthropic-config",
		"google":    "",
		"vader":     "",
	}
	for provider, want := range tests {
		if got := apiKeyFor(provider); got != want {
			t.Errorf("apiKeyFor(%q) = %q, want %q", provider, got, want)
		}
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.PersistentFlags().Set("output", "json")
	cmd.PersistentFlags().Set("provider", "anthropic")
	cmd.PersistentFlags().Set("sentiment", "openai")
	cmd.PersistentFlags().Set("strip-markdown", "true")

	bindFlagsToViper(cmd)

	// Test that values are bound
	expected := map[string]string{
		"output":               "json",
		"translation.provider": "anthropic",
		"sentiment.provider":   "openai",
		"input.strip_markdown": "true",
		"translation.source":   "es",
	}
	for key, want := range expected {
		if got := viper.GetString(key); got != want {
			t.Errorf("Expected %s to be %s, got %s", key, want, got)
		}
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetViper(t)
	t.Setenv("VALKEY_INIT_ADDRESS", "valkey:6379")

	s := LoadSettings()

	if s.Output != "text" || s.SourceLang != "es" || s.TargetLang != "en" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.TranslationProvider != "google" || s.SentimentProvider != "vader" || s.Cache != "none" {
		t.Errorf("unexpected provider defaults: %+v", s)
	}
	if s.Host != "localhost" || s.Port != 8080 {
		t.Errorf("unexpected server defaults: %s:%d", s.Host, s.Port)
	}
	if s.TranslationTimeout <= 0 || s.SentimentTimeout <= 0 {
		t.Error("expected positive timeouts")
	}
	if s.ValkeyAddress != "valkey:6379" {
		t.Errorf("ValkeyAddress = %q, want valkey:6379", s.ValkeyAddress)
	}
	if !strings.HasSuffix(s.CachePath, filepath.Join("textlens", "translations.db")) {
		t.Errorf("CachePath = %q", s.CachePath)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	resetViper(t)

	s := LoadSettings()
	s.Output = "xml"
	if err := s.Validate(); err == nil {
		t.Error("expected error for unknown output format")
	}

	s = LoadSettings()
	s.SourceLang = "xx"
	if err := s.Validate(); err == nil {
		t.Error("expected error for unknown source language")
	}
}

// runCommand executes the root command offline: no translation and VADER
// scoring.
func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetViper(t)

	cmd := CreateRootCommand(NewFlags())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--provider", "none", "--log-level", "error"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommandAnalyzesArguments(t *testing.T) {
	out, _, err := runCommand(t, "", "--output", "json", "I love this product.", "It is very good.")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result processor.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.OriginalText != "I love this product. It is very good." {
		t.Errorf("OriginalText = %q", result.OriginalText)
	}
	if result.Polarity <= 0 || result.SentimentLabel != "positive" {
		t.Errorf("expected positive result, got %v (%s)", result.Polarity, result.SentimentLabel)
	}
	if len(result.Sentences) != 2 {
		t.Errorf("expected 2 sentence pairs, got %d", len(result.Sentences))
	}
	if result.Provider != "none" {
		t.Errorf("Provider = %q, want none", result.Provider)
	}
}

func TestAnalyzeCommandReadsStdin(t *testing.T) {
	out, _, err := runCommand(t, "\ufeffThis is terrible. I hate it.\n", "analyze", "--output", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result processor.Result
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	if result.Origin != "stdin" {
		t.Errorf("Origin = %q, want stdin", result.Origin)
	}
	if strings.HasPrefix(result.OriginalText, "\ufeff") {
		t.Error("byte order mark was not stripped")
	}
	if result.SentimentLabel != "negative" {
		t.Errorf("SentimentLabel = %q, want negative", result.SentimentLabel)
	}
}

func TestRootCommandWarnsOnEmptyInput(t *testing.T) {
	blank := filepath.Join(t.TempDir(), "blank.txt")
	if err := os.WriteFile(blank, []byte("  \n\t\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "blank stdin", stdin: "   \n\n"},
		{name: "blank argument", args: []string{"   "}},
		{name: "blank file", args: []string{"--file", blank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := runCommand(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, want nil", err)
			}
			if !strings.Contains(errOut, emptyInputWarning) {
				t.Errorf("expected warning on stderr, got %q", errOut)
			}
			if strings.Contains(out, "Usage:") {
				t.Errorf("usage must not be printed for blank input: %q", out)
			}
		})
	}
}

func TestRootCommandRejectsUnsupportedTarget(t *testing.T) {
	_, _, err := runCommand(t, "", "--target", "de", "Hola.")
	if err == nil || !strings.Contains(err.Error(), "unsupported target language") {
		t.Errorf("expected unsupported target error, got %v", err)
	}
}

func TestRootCommandRejectsUnknownFormat(t *testing.T) {
	_, _, err := runCommand(t, "", "--output", "xml", "hola")
	if err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestRootCommandAnalyzesFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	notes := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(good, []byte("What a wonderful day."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(notes, []byte("# Title\n\nA **great** [link](https://example.com) here."), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCommand(t, "", "--output", "json", "--strip-markdown", "--file", good, "--file", notes)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []processor.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Origin != "good.txt" || results[1].Origin != "notes.md" {
		t.Errorf("unexpected origins %q, %q", results[0].Origin, results[1].Origin)
	}
	if strings.Contains(results[1].OriginalText, "**") || strings.Contains(results[1].OriginalText, "https://") {
		t.Errorf("markdown was not stripped: %q", results[1].OriginalText)
	}
}

func TestRootCommandReportsFailedFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("Fine."), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCommand(t, "", "--output", "json", "--file", good, "--file", filepath.Join(dir, "missing.txt"))
	if err == nil {
		t.Error("expected error when a file fails")
	}

	_, _, err = runCommand(t, "", "--file", filepath.Join(dir, "image.png"))
	if err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := runCommand(t, "", "schema")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("invalid schema JSON: %v", err)
	}
	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("schema has no properties: %s", out)
	}
	for _, field := range []string{"polarity", "subjectivity", "sentences", "word_frequency", "translated_text"} {
		if _, ok := props[field]; !ok {
			t.Errorf("schema lacks property %q", field)
		}
	}
}

func TestRunInteractive(t *testing.T) {
	in := strings.NewReader("\nhola\nmundo\n\nadios\n")
	var out bytes.Buffer
	var got []string

	err := RunInteractive(context.Background(), in, &out, func(ctx context.Context, text string) error {
		if strings.TrimSpace(text) == "" {
			return processor.ErrEmptyInput
		}
		got = append(got, text)
		if text == "adios" {
			return errors.New("boom")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInteractive() error = %v", err)
	}

	if len(got) != 2 || got[0] != "hola\nmundo" || got[1] != "adios" {
		t.Errorf("unexpected submissions %q", got)
	}
	output := out.String()
	if !strings.Contains(output, "Warning: please enter some text") {
		t.Error("expected a warning for the empty submission")
	}
	if !strings.Contains(output, "Error: boom") {
		t.Error("expected the analysis error to be printed")
	}
	if strings.Count(output, interactivePrompt) != 3 {
		t.Errorf("expected 3 prompts, got output:\n%s", output)
	}
}

func TestRunInteractiveStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunInteractive(ctx, strings.NewReader("hola\n\n"), &bytes.Buffer{}, func(context.Context, string) error {
		t.Error("analyze must not be called after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
