// Package tui provides the terminal user interface for suds.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/suds/internal/service"
	"github.com/xolan/suds/internal/tui/ui"
	"github.com/xolan/suds/internal/tui/views"
)

// Phase is the application phase
type Phase int

const (
	// PhaseSession is the live session: stopwatch and rating keys.
	PhaseSession Phase = iota
	// PhaseResults is the terminal phase after stop-via-toggle. The
	// session controls are dead for the rest of the process.
	PhaseResults
)

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// UI state
	phase    Phase
	width    int
	height   int
	showHelp bool

	// View models
	sessionView views.SessionModel
	resultsView views.ResultsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		phase:         PhaseSession,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		sessionView:   views.NewSessionModel(services, styles, keys),
		resultsView:   views.NewResultsModel(services, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.sessionView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The filename prompt captures all character keys
		capturing := m.phase == PhaseResults && m.resultsView.IsPrompting()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Theme) && !capturing:
			return m.changeTheme()
		}

		// The overlay swallows everything else so keys cannot reach
		// the views behind it
		if m.showHelp {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 3 // Account for status bar
		m.sessionView.SetSize(m.width, contentHeight)
		m.resultsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.SessionDoneMsg:
		// One-way transition: no resume after results
		m.phase = PhaseResults
		m.resultsView = m.resultsView.Open()
		return m, m.resultsView.Init()
	}

	switch m.phase {
	case PhaseSession:
		m.sessionView, cmd = m.sessionView.Update(msg)
	case PhaseResults:
		m.resultsView, cmd = m.resultsView.Update(msg)
	}

	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	switch m.phase {
	case PhaseSession:
		b.WriteString(m.sessionView.View())
	case PhaseResults:
		b.WriteString(m.resultsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.styles.App.Render(m.renderHelpOverlay())
	}

	return m.styles.App.Render(b.String())
}

// changeTheme cycles to the next theme, rebuilds the styles,
// broadcasts them to the views, and persists the choice.
func (m Model) changeTheme() (Model, tea.Cmd) {
	newTheme := m.themeProvider.NextTheme()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{Styles: m.styles}
	m.sessionView, _ = m.sessionView.Update(themeMsg)
	m.resultsView, _ = m.resultsView.Update(themeMsg)

	return m, m.saveThemeConfig(newTheme)
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch m.phase {
	case PhaseSession:
		parts = append(parts, m.renderKeyHelp("space", "start/stop"))
		parts = append(parts, m.renderKeyHelp("1-9,0", "rate"))
	case PhaseResults:
		if m.resultsView.IsPrompting() {
			parts = append(parts, m.renderKeyHelp("Enter", "save"))
			parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
		} else {
			parts = append(parts, m.renderKeyHelp("e", "export"))
		}
	}

	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(k, desc string) string {
	return m.styles.StatusKey.Render(k) + " " + m.styles.StatusHelp.Render(desc)
}

// renderHelpOverlay renders the keyboard shortcut help
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	switch m.phase {
	case PhaseSession:
		help.WriteString("  space/s    Start or pause the stopwatch\n")
		help.WriteString("  1-9        Record a rating of 1-9\n")
		help.WriteString("  0          Record a rating of 10\n")
		help.WriteString("\n")
		help.WriteString(m.styles.StatusHelp.Render("Pausing ends the session and opens the results."))
		help.WriteString("\n")
	case PhaseResults:
		help.WriteString("  e          Export the session as CSV\n")
		help.WriteString("  Enter      Save to the entered filename\n")
		help.WriteString("  Esc        Cancel the export prompt\n")
	}

	help.WriteString("\n")
	help.WriteString("  t          Cycle theme\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")
	help.WriteString(m.styles.StatusHelp.Render("Press ? to close"))

	return m.styles.Dialog.Render(help.String())
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
