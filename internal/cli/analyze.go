package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/textlens/internal/archive"
	"codeberg.org/snonux/textlens/internal/batch"
	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/logging"
	"codeberg.org/snonux/textlens/internal/models"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/report"
)

func newAnalyzeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Translate and analyse text, files or standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, flags)
		},
	}
	setupAnalyzeFlags(cmd, flags)
	return cmd
}

// runRoot handles the maintenance flags of the root command before falling
// through to analysis.
func runRoot(cmd *cobra.Command, args []string, flags *Flags) error {
	// Handle --archive-cache flag
	if flags.ArchiveCache {
		cachePath := LoadSettings().CachePath
		archived, err := archive.ArchiveCache(cachePath)
		if err != nil {
			return fmt.Errorf("failed to archive translation cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Translation cache archived to: %s\n", archived)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(GetOpenAIKey(), "")
		return lister.ListAvailableModels(cmd.Context(), cmd.OutOrStdout())
	}

	return runAnalyze(cmd, args, flags)
}

func runAnalyze(cmd *cobra.Command, args []string, flags *Flags) error {
	settings := LoadSettings()
	if err := settings.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline, err := NewPipeline(ctx, settings)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	a := &analyzer{
		pipeline: pipeline,
		settings: settings,
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		spinner: settings.Output == report.FormatText && !flags.NoSpinner &&
			logging.IsTerminal(cmd.ErrOrStderr()),
	}

	// Blank input is a warning, not a failure
	err = a.run(ctx, cmd.InOrStdin(), args, flags)
	if errors.Is(err, processor.ErrEmptyInput) {
		fmt.Fprintln(a.errOut, emptyInputWarning)
		return nil
	}
	return err
}

// run picks the input source: files, arguments, an interactive terminal or
// piped standard input.
func (a *analyzer) run(ctx context.Context, in io.Reader, args []string, flags *Flags) error {
	paths := flags.Files
	if flags.BatchFile != "" {
		listed, err := batch.ReadListFile(flags.BatchFile)
		if err != nil {
			return err
		}
		paths = append(paths, listed...)
	}

	switch {
	case len(paths) > 0:
		return a.runFiles(ctx, paths)
	case len(args) > 0:
		return a.analyzeText(ctx, strings.Join(args, " "), processor.OriginDirect)
	}

	if f, ok := in.(*os.File); ok && logging.IsTerminal(f) {
		return RunInteractive(ctx, in, a.out, func(ctx context.Context, text string) error {
			return a.analyzeText(ctx, text, processor.OriginDirect)
		})
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read standard input: %w", err)
	}
	text, err := input.Decode("standard input", data)
	if err != nil {
		return err
	}
	return a.analyzeText(ctx, text, "stdin")
}

// analyzer renders pipeline results for one CLI invocation.
type analyzer struct {
	pipeline *Pipeline
	settings Settings
	out      io.Writer
	errOut   io.Writer
	spinner  bool
}

func (a *analyzer) analyzeText(ctx context.Context, text, origin string) error {
	req, err := processor.NewRequest(text,
		processor.WithLanguages(a.settings.SourceLang, a.settings.TargetLang),
		processor.WithOrigin(origin))
	if err != nil {
		return err
	}

	s := report.NewSpinner(a.errOut, a.spinner)
	s.SetSuffix(" Translating and analysing...")
	s.Start()
	result, err := a.pipeline.Processor.Analyze(ctx, req)
	s.Stop()
	if err != nil {
		return err
	}

	return a.render(result, false)
}

func (a *analyzer) render(result *processor.Result, fromFile bool) error {
	return report.Render(a.out, a.settings.Output, result, report.Options{
		Color:       logging.IsTerminal(a.out),
		FilePreview: fromFile,
	})
}

// runFiles analyses paths in sequence. Text output is streamed per file;
// JSON and YAML collect the results into one document.
func (a *analyzer) runFiles(ctx context.Context, paths []string) error {
	var results []*processor.Result
	streaming := a.settings.Output == report.FormatText

	runner := batch.NewRunner(a.pipeline.Processor, batch.Options{
		SourceLang:    a.settings.SourceLang,
		TargetLang:    a.settings.TargetLang,
		StripMarkdown: a.settings.StripMarkdown,
		OnEntry: func(e batch.Entry) {
			if e.Result == nil {
				return
			}
			if !streaming {
				results = append(results, e.Result)
				return
			}
			if len(paths) > 1 {
				fmt.Fprintf(a.out, "\n==> %s <==\n", e.Path)
			}
			if err := a.render(e.Result, true); err != nil {
				fmt.Fprintf(a.errOut, "Error rendering %s: %v\n", e.Path, err)
			}
		},
	})

	s := report.NewSpinner(a.errOut, a.spinner && !streaming)
	s.SetSuffix(fmt.Sprintf(" Analysing %d files...", len(paths)))
	s.Start()
	summary := runner.Run(ctx, paths)
	s.Stop()

	if len(paths) == 1 {
		if e := summary.Entries; len(e) == 1 {
			if e[0].Skipped {
				return processor.ErrEmptyInput
			}
			if e[0].Err != nil {
				return e[0].Err
			}
		}
	} else {
		summary.Print(a.errOut)
	}

	if !streaming {
		var err error
		if len(paths) == 1 && len(results) == 1 {
			err = a.render(results[0], true)
		} else {
			err = a.renderAll(results)
		}
		if err != nil {
			return err
		}
	}

	if summary.Failed() {
		return errors.New("some files could not be analysed")
	}
	return ctx.Err()
}

func (a *analyzer) renderAll(results []*processor.Result) error {
	if results == nil {
		results = []*processor.Result{}
	}
	if a.settings.Output == report.FormatYAML {
		return report.WriteYAML(a.out, results)
	}
	return report.WriteJSON(a.out, results)
}
