package about

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	"syntaxlabs/internal/ui/theme"
)

type Model struct {
	styles theme.Styles
	lines  []string
	width  int
	height int
}

func New(styles theme.Styles) Model {
	return Model{styles: styles}
}

func (m *Model) SetStyles(s theme.Styles) { m.styles = s }

func (m *Model) SetSize(w, h int) { m.width, m.height = w, h }

func (m *Model) SetView(vm navdto.ViewModel) {
	if vm.About != nil {
		m.lines = vm.About.Lines
	}
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("About Syntax Labs"),
		"",
		strings.Join(m.lines, "\n"),
	)
	return m.styles.Pane.Width(max(m.width-4, 20)).Render(body)
}
