package ranking

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	"syntaxlabs/internal/ui/theme"
)

const barWidth = 20

// Model lists the leaderboard in a table with a points bar per row.
type Model struct {
	styles  theme.Styles
	table   table.Model
	entries []progressdto.RankEntry
	width   int
	height  int
}

func New(styles theme.Styles) Model {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
	)
	m := Model{styles: styles, table: t}
	m.applyStyles()
	return m
}

func columns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 18},
		{Title: "Points", Width: 8},
		{Title: "Tier", Width: 10},
		{Title: "Progress", Width: barWidth + 2},
	}
}

func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.applyStyles()
}

func (m *Model) applyStyles() {
	st := table.DefaultStyles()
	st.Header = st.Header.Foreground(m.styles.Accent).Bold(true)
	st.Selected = st.Selected.Foreground(m.styles.Text).Background(m.styles.Surface).Bold(true)
	m.table.SetStyles(st)
}

func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.table.SetHeight(max(h-6, 3))
}

func (m *Model) SetView(vm navdto.ViewModel) {
	m.entries = vm.Ranking
	rows := make([]table.Row, 0, len(vm.Ranking))
	for _, e := range vm.Ranking {
		filled := int(e.BarPercent * barWidth / 100)
		filled = min(max(filled, 0), barWidth)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.Position),
			e.Name,
			fmt.Sprintf("%d", e.Points),
			e.Tier,
			strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled),
		})
	}
	m.table.SetRows(rows)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.styles.Title.Render("Global Ranking") + "  " +
		m.styles.Muted.Render(fmt.Sprintf("%d developers", len(m.entries)))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View())
}
