package report

import "github.com/charmbracelet/lipgloss/v2"

var (
	// Color palette
	PositiveColor = lipgloss.Color("#66BB6A")
	NegativeColor = lipgloss.Color("#FF6B6B")
	NeutralColor  = lipgloss.Color("#42A5F5")
	WarningColor  = lipgloss.Color("#FFA726")
	MutedColor    = lipgloss.Color("#6C757D")
	AccentColor   = lipgloss.Color("#7C3AED")
)

// styles holds every style the text report uses. The plain set renders
// without color so output piped to files stays readable.
type styles struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	neutral  lipgloss.Style
	warning  lipgloss.Style
	muted    lipgloss.Style
	bar      lipgloss.Style
	pane     lipgloss.Style
}

func newStyles(color bool) styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(paneWidth)

	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain, heading: plain, positive: plain, negative: plain,
			neutral: plain, warning: plain, muted: plain, bar: plain,
			pane: pane,
		}
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Underline(true),
		heading:  lipgloss.NewStyle().Bold(true),
		positive: lipgloss.NewStyle().Foreground(PositiveColor).Bold(true),
		negative: lipgloss.NewStyle().Foreground(NegativeColor).Bold(true),
		neutral:  lipgloss.NewStyle().Foreground(NeutralColor).Bold(true),
		warning:  lipgloss.NewStyle().Foreground(WarningColor).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(MutedColor),
		bar:      lipgloss.NewStyle().Foreground(AccentColor),
		pane:     pane.BorderForeground(MutedColor),
	}
}

// label returns the style for a sentiment label.
func (s styles) label(label string) lipgloss.Style {
	switch label {
	case "positive", "high":
		return s.positive
	case "negative":
		return s.negative
	default:
		return s.neutral
	}
}
