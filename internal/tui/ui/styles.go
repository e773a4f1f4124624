package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App       lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Stopwatch
	Clock        lipgloss.Style
	TimerRunning lipgloss.Style
	TimerStopped lipgloss.Style

	// Recorded entry list
	EntryTime   lipgloss.Style
	EntryRating lipgloss.Style

	// Results
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Chart     lipgloss.Style

	// Export prompt
	InputFocused lipgloss.Style

	// Help overlay
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Outcome messages
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Primary: Purple (titles, borders)
// - Secondary: Cyan (times, key hints)
// - Accent: BrightPurple (the stopwatch, ratings)
// - Muted: BrightBlack (inactive elements, labels)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		Clock: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerStopped: lipgloss.NewStyle().
			Foreground(muted),

		EntryTime: lipgloss.NewStyle().
			Foreground(secondary).
			Width(8),
		EntryRating: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(16),
		StatValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		Chart: lipgloss.NewStyle().
			Foreground(secondary),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
