package theme

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Milestone = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Card frames the end-of-session summary.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 2)

// Feedback renders the line shown after an answer.
func Feedback(correct bool, answer string) string {
	if correct {
		return Correct.Render("✓ Correct!")
	}
	return Incorrect.Render("✗ Not quite.") + " " + Hint.Render(fmt.Sprintf("The answer is %s.", answer))
}

// StreakBanner renders a streak milestone.
func StreakBanner(streak int) string {
	return Milestone.Render(fmt.Sprintf("★ %d in a row!", streak))
}

// LevelBanner renders an auto-level change.
func LevelBanner(change, level int) string {
	if change > 0 {
		return Milestone.Render(fmt.Sprintf("▲ Level up! Now at level %d.", level))
	}
	return Hint.Render(fmt.Sprintf("▼ Easing off to level %d.", level))
}
