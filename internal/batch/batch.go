package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/processor"
)

// Analyzer is satisfied by *processor.Processor.
type Analyzer interface {
	Analyze(ctx context.Context, req processor.Request) (*processor.Result, error)
}

// Entry is the outcome for one file. Exactly one of Result or Err is set,
// unless the file was skipped as empty.
type Entry struct {
	Path    string
	Result  *processor.Result
	Err     error
	Skipped bool
}

// Summary collects the entries of one run.
type Summary struct {
	Entries   []Entry
	Processed int
	Skipped   int
	Errors    int
	// Degraded counts processed files whose result carries warnings
	Degraded int
}

// Options control how files are turned into requests.
type Options struct {
	SourceLang    string
	TargetLang    string
	StripMarkdown bool
	// OnEntry, if set, is called after each file in input order
	OnEntry func(Entry)
}

// Runner analyses files one after another. A failing file never stops the
// run.
type Runner struct {
	analyzer Analyzer
	opts     Options
}

// NewRunner creates a runner
func NewRunner(analyzer Analyzer, opts Options) *Runner {
	return &Runner{analyzer: analyzer, opts: opts}
}

// Run processes paths in order. It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) *Summary {
	summary := &Summary{}

	for i, path := range paths {
		if ctx.Err() != nil {
			slog.Warn("[Batch] Cancelled", slog.Int("remaining", len(paths)-i))
			break
		}

		slog.Info("[Batch] Processing file",
			slog.String("path", path),
			slog.Int("index", i+1),
			slog.Int("total", len(paths)))

		entry := r.processFile(ctx, path)
		switch {
		case entry.Skipped:
			summary.Skipped++
		case entry.Err != nil:
			slog.Error("[Batch] File failed", slog.String("path", path), slog.String("error", entry.Err.Error()))
			summary.Errors++
		default:
			summary.Processed++
			if entry.Result.HasWarnings() {
				summary.Degraded++
			}
		}

		summary.Entries = append(summary.Entries, entry)
		if r.opts.OnEntry != nil {
			r.opts.OnEntry(entry)
		}
	}

	return summary
}

func (r *Runner) processFile(ctx context.Context, path string) Entry {
	entry := Entry{Path: path}

	text, err := input.ReadFile(path)
	if err != nil {
		entry.Err = err
		return entry
	}
	if r.opts.StripMarkdown && input.IsMarkdown(path) {
		text = input.StripMarkdown(text)
	}

	req, err := processor.NewRequest(text,
		processor.WithLanguages(r.opts.SourceLang, r.opts.TargetLang),
		processor.WithOrigin(filepath.Base(path)))
	if errors.Is(err, processor.ErrEmptyInput) {
		entry.Skipped = true
		return entry
	}
	if err != nil {
		entry.Err = err
		return entry
	}

	entry.Result, entry.Err = r.analyzer.Analyze(ctx, req)
	return entry
}

// Failed reports whether any file ended in an error.
func (s *Summary) Failed() bool {
	return s.Errors > 0
}

// Print writes the run statistics and the per-file errors to w.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(w, "Total files: %d\n", len(s.Entries))
	fmt.Fprintf(w, "Processed: %d\n", s.Processed)
	if s.Degraded > 0 {
		fmt.Fprintf(w, "Processed with warnings: %d\n", s.Degraded)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped (empty): %d\n", s.Skipped)
	}
	if s.Errors > 0 {
		fmt.Fprintf(w, "Errors: %d\n", s.Errors)
		for _, e := range s.Entries {
			if e.Err != nil {
				fmt.Fprintf(w, "  %s: %v\n", e.Path, e.Err)
			}
		}
	}
	fmt.Fprintf(w, "================================\n")
}

// ReadListFile reads file paths from a list file, one per line. Blank lines
// and lines starting with '#' are ignored; relative paths are resolved
// against the list file's directory.
func ReadListFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	baseDir := filepath.Dir(filename)
	var paths []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(baseDir, line)
		}
		paths = append(paths, line)
	}

	return paths, nil
}
