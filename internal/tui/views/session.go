// Package views contains the TUI view models.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/suds/internal/service"
	"github.com/xolan/suds/internal/session"
	"github.com/xolan/suds/internal/tui/ui"
)

// maxVisibleEntries is the size of the recent-entry window shown
// under the stopwatch during a session.
const maxVisibleEntries = 8

// SessionModel is the model for the live session view: the stopwatch,
// the rating keys, and the list of recorded entries.
type SessionModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int

	tick time.Duration
}

// NewSessionModel creates a new session view model
func NewSessionModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) SessionModel {
	interval := services.Config.Get().RefreshIntervalMS
	return SessionModel{
		services: services,
		styles:   styles,
		keys:     keys,
		tick:     time.Duration(interval) * time.Millisecond,
	}
}

// sessionTickMsg drives the stopwatch display refresh.
type sessionTickMsg time.Time

// Init implements tea.Model
func (m SessionModel) Init() tea.Cmd {
	return m.tickClock()
}

// Update implements tea.Model
func (m SessionModel) Update(msg tea.Msg) (SessionModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if running := m.services.Session.Toggle(); !running {
				// Stop-via-toggle hands over to the results view
				return m, func() tea.Msg { return ui.SessionDoneMsg{} }
			}
			return m, nil

		case key.Matches(msg, m.keys.Rating):
			if rating, ok := ui.RatingFromKey(msg.String()); ok {
				// Record returns nil while paused: dropped, no feedback
				m.services.Session.Record(rating)
			}
			return m, nil
		}

	case sessionTickMsg:
		// The redraw itself refreshes the clock; while paused the
		// elapsed reading is frozen so the display retains its value.
		return m, m.tickClock()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m SessionModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Exposure Session"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Clock.Render(session.FormatClock(m.services.Session.Elapsed())))
	b.WriteString("  ")
	if m.services.Session.Running() {
		b.WriteString(m.styles.TimerRunning.Render("● recording"))
	} else if m.services.Session.Count() > 0 || m.services.Session.Elapsed() > 0 {
		b.WriteString(m.styles.TimerStopped.Render("paused"))
	} else {
		b.WriteString(m.styles.TimerStopped.Render("press space to begin"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderRecentEntries())

	b.WriteString("\n")
	b.WriteString(m.styles.StatusHelp.Render("Rate distress with 1-9, 0 = 10. Ratings while paused are ignored."))

	return b.String()
}

// renderRecentEntries renders the tail of the rating log, newest last.
func (m SessionModel) renderRecentEntries() string {
	entries := m.services.Session.Entries()
	if len(entries) == 0 {
		return m.styles.StatusHelp.Render("No ratings recorded yet.") + "\n"
	}

	start := 0
	if len(entries) > maxVisibleEntries {
		start = len(entries) - maxVisibleEntries
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(m.styles.StatusHelp.Render(fmt.Sprintf("… %d earlier", start)))
		b.WriteString("\n")
	}
	for _, e := range entries[start:] {
		b.WriteString(m.styles.EntryTime.Render(session.FormatClock(e.Offset)))
		b.WriteString(m.styles.EntryRating.Render(fmt.Sprintf("%d", e.Rating)))
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize sets the view dimensions
func (m *SessionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// tickClock returns a command that refreshes the stopwatch display on
// the configured interval (~10 Hz by default).
func (m SessionModel) tickClock() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}
