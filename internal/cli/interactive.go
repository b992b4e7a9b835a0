package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/textlens/internal/processor"
)

const (
	interactivePrompt = "Enter text to analyse (finish with an empty line, Ctrl-D to quit):"
	emptyInputWarning = "Warning: please enter some text to analyse."
)

// RunInteractive reads paragraphs from in until EOF. Each paragraph ends
// with an empty line and is passed to analyze; empty submissions and
// analysis errors are reported and the prompt repeats.
func RunInteractive(ctx context.Context, in io.Reader, out io.Writer, analyze func(context.Context, string) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 5<<20)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, interactivePrompt)
		text, ok := readParagraph(scanner)
		if !ok && strings.TrimSpace(text) == "" {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		if err := analyze(ctx, text); err != nil {
			if errors.Is(err, processor.ErrEmptyInput) {
				fmt.Fprintln(out, emptyInputWarning)
			} else {
				fmt.Fprintf(out, "Error: %v\n", err)
			}
		}
		fmt.Fprintln(out)

		if !ok {
			return scanner.Err()
		}
	}
}

// readParagraph collects lines up to the next empty line. ok is false once
// the input is exhausted.
func readParagraph(scanner *bufio.Scanner) (text string, ok bool) {
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), false
}
