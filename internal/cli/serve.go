package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/textlens/internal/server"
)

func newServeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline over HTTP",
		Long: `Start an HTTP server exposing:

  POST /api/v1/analyze          JSON body {"text": "...", "source": "es", "target": "en"}
  POST /api/v1/analyze/upload   multipart form with a "file" field (.txt, .csv, .md)
  GET  /health
  GET  /metrics                 Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().StringVar(&flags.Host, "host", flags.Host, "Address to listen on")
	cmd.Flags().IntVar(&flags.Port, "port", flags.Port, "Port to listen on")
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command) error {
	settings := LoadSettings()
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := NewPipeline(ctx, settings)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	cfg := server.DefaultConfig()
	cfg.Host = settings.Host
	cfg.Port = settings.Port
	cfg.SourceLang = settings.SourceLang
	cfg.TargetLang = settings.TargetLang
	cfg.StripMarkdown = settings.StripMarkdown

	return server.New(cfg, pipeline.Processor).Run(ctx)
}
