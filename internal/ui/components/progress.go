package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// ProgressBar is a single-line bar drawn with block characters.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int // bar cells, excluding label and percentage
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percent := min(max(p.Percent, 0), 1)
	width := max(p.Width, 4)
	filled := int(float64(width)*percent + 0.5)

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %3d%%", int(percent*100+0.5))))
	}

	return b.String()
}
