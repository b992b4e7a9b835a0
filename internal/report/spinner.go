package report

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while an analysis runs.
type Spinner interface {
	SetSuffix(suffix string)
	Start()
	Stop()
}

type terminalSpinner struct {
	spinner *spinner.Spinner
}

func (s *terminalSpinner) SetSuffix(suffix string) {
	s.spinner.Suffix = suffix
}

func (s *terminalSpinner) Start() {
	s.spinner.Start()
}

func (s *terminalSpinner) Stop() {
	s.spinner.Stop()
}

type noopSpinner struct{}

func (noopSpinner) SetSuffix(string) {}
func (noopSpinner) Start()           {}
func (noopSpinner) Stop()            {}

// NewSpinner returns a spinner drawing on w, or one that does nothing when
// enabled is false.
func NewSpinner(w io.Writer, enabled bool) Spinner {
	if !enabled {
		return noopSpinner{}
	}
	return &terminalSpinner{
		spinner: spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w)),
	}
}
