package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/textlens/internal"
	"codeberg.org/snonux/textlens/internal/logging"
)

// CreateRootCommand creates and configures the root cobra command. Running
// it without a subcommand analyses text.
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textlens [text...]",
		Short: "Spanish text translation and sentiment analysis",
		Long: `textlens translates Spanish text to English and analyses it.

It scores the overall polarity and subjectivity, pairs original and
translated sentences, scores the first ten of them, and ranks the most
frequent words of the translation.

Examples:
  textlens                                  # Interactive prompt
  textlens "Me encanta este producto."      # Analyse text from arguments
  textlens --file review.txt --output json  # Analyse a file, print JSON
  cat reviews.csv | textlens                # Analyse standard input
  textlens serve --port 8080                # Start the HTTP API`,
		Version: internal.Version,
		// Free text is analysed, so unknown words are not subcommands
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newAnalyzeCommand(flags),
		newServeCommand(flags),
		newSchemaCommand(),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.textlens.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text, json, yaml")

	// Translation and sentiment flags apply to analyze and serve alike
	pf.StringVarP(&flags.Source, "source", "s", flags.Source, "Source language code")
	pf.StringVarP(&flags.Target, "target", "t", flags.Target, "Target language code")
	pf.StringVarP(&flags.Provider, "provider", "p", flags.Provider, "Translation provider: google, openai, gemini, anthropic, none")
	pf.StringVar(&flags.Model, "model", "", "Model for LLM translation providers (provider default if empty)")
	pf.StringVar(&flags.Cache, "cache", flags.Cache, "Translation cache: none, memory, sqlite, valkey")
	pf.StringVar(&flags.Sentiment, "sentiment", flags.Sentiment, "Sentiment scorer: vader, openai")
	pf.StringVar(&flags.SentimentModel, "sentiment-model", "", "Model for the openai sentiment scorer")
	pf.BoolVar(&flags.StripMarkdown, "strip-markdown", false, "Analyse only the visible text of .md files")

	// Local flags
	setupAnalyzeFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ArchiveCache, "archive-cache", false, "Move the sqlite translation cache into its archive directory")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// setupAnalyzeFlags registers the input flags shared by the root and
// analyze commands.
func setupAnalyzeFlags(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().StringArrayVarP(&flags.Files, "file", "f", nil, "Analyse a .txt, .csv or .md file (repeatable)")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Analyse the files listed in this file (one path per line)")
	cmd.Flags().BoolVar(&flags.NoSpinner, "no-spinner", false, "Do not show a progress spinner")
}

func bindFlagsToViper(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("output", pf.Lookup("output"))
	viper.BindPFlag("translation.source", pf.Lookup("source"))
	viper.BindPFlag("translation.target", pf.Lookup("target"))
	viper.BindPFlag("translation.provider", pf.Lookup("provider"))
	viper.BindPFlag("translation.model", pf.Lookup("model"))
	viper.BindPFlag("translation.cache", pf.Lookup("cache"))
	viper.BindPFlag("sentiment.provider", pf.Lookup("sentiment"))
	viper.BindPFlag("sentiment.model", pf.Lookup("sentiment-model"))
	viper.BindPFlag("input.strip_markdown", pf.Lookup("strip-markdown"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".textlens" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".textlens")
	}

	// Environment variables, e.g. TEXTLENS_TRANSLATION_PROVIDER
	viper.SetEnvPrefix("TEXTLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging(cmd *cobra.Command) error {
	level := viper.GetString("log.level")
	// The server logs requests at info level unless told otherwise
	if cmd.Name() == "serve" && !cmd.Flags().Changed("log-level") &&
		!viper.InConfig("log.level") && os.Getenv("TEXTLENS_LOG_LEVEL") == "" {
		level = "info"
	}
	return logging.InitLogger(level)
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	return getKey("OPENAI_API_KEY", "openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	return getKey("GEMINI_API_KEY", "gemini.api_key")
}

// GetAnthropicKey retrieves the Anthropic API key from environment or config
func GetAnthropicKey() string {
	return getKey("ANTHROPIC_API_KEY", "anthropic.api_key")
}

func getKey(envVar, configKey string) string {
	// First check environment variable
	if key := os.Getenv(envVar); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString(configKey)
}
