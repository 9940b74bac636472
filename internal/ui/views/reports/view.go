package reports

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	reportdto "syntaxlabs/internal/modules/report/dto"
	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Full(ctx context.Context) (reportdto.ReportOutput, error)
	Save(ctx context.Context, report reportdto.ReportOutput, dir string) (reportdto.SavedReport, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// GeneratedMsg is sent when a report is ready (or failed).
type GeneratedMsg struct {
	Report reportdto.ReportOutput
	Err    error
}

// SavedMsg is sent after a report was written to disk.
type SavedMsg struct {
	Saved reportdto.SavedReport
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model shows the progress charts and, once generated, a report rendered
// with glamour in a scrollable viewport.
type Model struct {
	port        Port
	dir         string
	styles      theme.Styles
	viewport    viewport.Model
	renderer    *glamour.TermRenderer
	renderErr   error
	reports     *navdto.Reports
	placeholder *navdto.Placeholder
	report      *reportdto.ReportOutput
	width       int
	height      int
}

func New(port Port, dir string, styles theme.Styles) Model {
	m := Model{port: port, dir: dir, styles: styles, viewport: viewport.New(0, 0)}
	m.setRenderer(styles.GlamourStyle())
	return m
}

// setRenderer rebuilds the markdown renderer for the named glamour style.
// On failure reports are shown as plain markdown with the error on top.
func (m *Model) setRenderer(style string) {
	m.renderer, m.renderErr = glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(m.viewport.Width),
	)
	if m.renderErr != nil {
		m.renderer = nil
	}
}

func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.setRenderer(s.GlamourStyle())
	m.refreshReport()
}

func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.viewport.Width = max(w/2-4, 20)
	m.viewport.Height = max(h-4, 3)
	m.setRenderer(m.styles.GlamourStyle())
	m.refreshReport()
}

func (m *Model) SetView(vm navdto.ViewModel) {
	m.reports = vm.Reports
	m.placeholder = vm.Placeholder
	if vm.Placeholder != nil {
		m.report = nil
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case GeneratedMsg:
		if msg.Err == nil {
			m.placeholder = nil
			m.report = &msg.Report
			m.refreshReport()
			m.viewport.GotoTop()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			if m.placeholder == nil {
				return m, m.generateCmd(m.port.Full)
			}
		case "w":
			if m.report != nil {
				return m, m.saveCmd(*m.report)
			}
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.placeholder != nil && m.report == nil {
		return components.Placeholder(m.styles, m.placeholder, m.width, m.height)
	}
	half := max(m.width/2-2, 20)

	var left strings.Builder
	if m.reports != nil {
		s := m.reports.Snapshot
		left.WriteString(m.styles.Title.Render("Weekly activity") + "\n")
		left.WriteString(components.ActivityColumns(m.styles, s.DailyActivityMinutes, 6) + "\n\n")
		left.WriteString(m.styles.Title.Render("Languages") + "\n")
		left.WriteString(components.LanguageBars(m.styles, s.Languages, half-4) + "\n\n")
		left.WriteString(m.styles.Title.Render("Challenge performance") + "\n")
		fmt.Fprintf(&left, "Success rate: %d%%\nAverage time: %dmin\nComplexity:   %d\n", s.SuccessRate, s.AverageTimeMinutes, s.Complexity)
	}
	left.WriteString("\n" + m.styles.Muted.Render("g: progress report  w: save  (ctrl+g in Programming: code report)"))

	right := m.styles.Muted.Render("No report generated yet.")
	if m.report != nil {
		right = m.viewport.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Pane.Width(half).Render(left.String()),
		m.styles.PaneActive.Width(half).Render(right),
	)
}

func (m *Model) refreshReport() {
	if m.report == nil {
		return
	}
	if m.renderer == nil {
		m.viewport.SetContent(m.styles.Error.Render("Preview unavailable: "+m.renderErr.Error()) + "\n\n" + m.report.Body)
		return
	}
	out, err := m.renderer.Render(m.report.Body)
	if err != nil {
		out = m.styles.Error.Render("Preview unavailable: "+err.Error()) + "\n\n" + m.report.Body
	}
	m.viewport.SetContent(out)
}

func (m Model) generateCmd(build func(context.Context) (reportdto.ReportOutput, error)) tea.Cmd {
	return func() tea.Msg {
		report, err := build(context.Background())
		return GeneratedMsg{Report: report, Err: err}
	}
}

func (m Model) saveCmd(report reportdto.ReportOutput) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.port.Save(context.Background(), report, m.dir)
		return SavedMsg{Saved: saved, Err: err}
	}
}
