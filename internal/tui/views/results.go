package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/suds/internal/plot"
	"github.com/xolan/suds/internal/service"
	"github.com/xolan/suds/internal/tui/ui"
)

// ResultsModel is the model for the results view shown once the
// session is stopped: the full dataset, the chart, and CSV export.
// There is no way back to the session from here.
type ResultsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	day    time.Time

	// Export prompt state
	prompting bool
	input     textinput.Model
	savedPath string
	err       error

	now func() time.Time
}

// NewResultsModel creates a new results view model
func NewResultsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ResultsModel {
	ti := textinput.New()
	ti.Placeholder = "filename.csv"
	ti.CharLimit = 200
	ti.Width = 50

	return ResultsModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    ti,
		now:      time.Now,
	}
}

// Open marks the session end: it stamps the results with the current
// date, used for the chart title and the default export filename.
func (m ResultsModel) Open() ResultsModel {
	m.day = m.now()
	return m
}

// Init implements tea.Model
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.handlePrompt(msg)
		}

		if key.Matches(msg, m.keys.Export) {
			m.prompting = true
			m.savedPath = ""
			m.err = nil
			m.input.SetValue(m.services.Session.DefaultExportPath(m.day))
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handlePrompt handles key events while the filename prompt is open.
func (m ResultsModel) handlePrompt(msg tea.KeyMsg) (ResultsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return m, nil
		}
		m.prompting = false
		m.input.Blur()

		// The write is synchronous and fast; errors surface below,
		// they are never retried.
		saved, err := m.services.Session.Export(path)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.savedPath = saved
		return m, nil

	case key.Matches(msg, m.keys.Back): // Escape cancels, nothing written
		m.prompting = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Session Results"))
	b.WriteString("\n\n")

	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderDataset())

	// An empty session has no chart; the dataset dump and export
	// (header-only) remain available.
	times, ratings := m.services.Session.Series()
	if len(times) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Chart.Render(plot.Render(times, ratings, m.chartWidth(), m.day)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderExport())

	return b.String()
}

// renderSummary renders the headline numbers for the session.
func (m ResultsModel) renderSummary() string {
	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Date:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(m.day.Format("2006-01-02")))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Duration:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%.2f s", m.services.Session.Elapsed().Seconds())))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Ratings:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d", m.services.Session.Count())))
	b.WriteString("\n")
	return b.String()
}

// renderDataset renders the full dataset as CSV-style text lines.
func (m ResultsModel) renderDataset() string {
	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Time (s), Rating"))
	b.WriteString("\n")
	for _, e := range m.services.Session.Entries() {
		b.WriteString(fmt.Sprintf("%.2f, %d\n", e.Seconds(), e.Rating))
	}
	return b.String()
}

// renderExport renders the export prompt, outcome message, or hint.
func (m ResultsModel) renderExport() string {
	if m.prompting {
		var b strings.Builder
		b.WriteString(m.styles.StatLabel.Render("Save CSV as:"))
		b.WriteString("\n")
		b.WriteString(m.styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.StatusHelp.Render("Enter to save, Esc to cancel"))
		return b.String()
	}

	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Export failed: %v", m.err)) + "\n" +
			m.styles.StatusHelp.Render("Press 'e' to try again")
	}
	if m.savedPath != "" {
		return m.styles.Success.Render("Results saved to "+m.savedPath) + "\n" +
			m.styles.StatusHelp.Render("Press 'q' to quit")
	}

	return m.styles.StatusHelp.Render("Press 'e' to export CSV, 'q' to quit")
}

// chartWidth returns the width available to the chart.
func (m ResultsModel) chartWidth() int {
	if m.width == 0 {
		return 60
	}
	w := m.width - 6
	if w > 72 {
		w = 72
	}
	return w
}

// SetSize sets the view dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsPrompting returns true while the filename prompt captures
// keyboard input.
func (m ResultsModel) IsPrompting() bool {
	return m.prompting
}
