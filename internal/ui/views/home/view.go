package home

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	"syntaxlabs/internal/ui/theme"
)

// Model draws the landing screen: the logo over floating code lines.
type Model struct {
	styles  theme.Styles
	landing navdto.Landing
	user    string
	width   int
	height  int
}

func New(styles theme.Styles) Model {
	return Model{styles: styles}
}

func (m *Model) SetStyles(s theme.Styles) { m.styles = s }

func (m *Model) SetSize(w, h int) { m.width, m.height = w, h }

func (m *Model) SetView(vm navdto.ViewModel) {
	if vm.Landing != nil {
		m.landing = *vm.Landing
	}
	m.user = ""
	if vm.User != nil {
		m.user = vm.User.Name
	}
}

func (m Model) View() string {
	snippet := lipgloss.NewStyle().Foreground(lipgloss.Color(m.landing.Color))
	var lines []string
	for i, s := range m.landing.Snippets {
		indent := (i * 7) % max(m.width/3, 1)
		lines = append(lines, strings.Repeat(" ", indent)+snippet.Render(s))
	}
	half := len(lines) / 2

	logo := m.styles.Title.Render("S Y N T A X   L A B S")
	tagline := m.styles.Muted.Render("Learn to code by writing code.")
	greeting := m.styles.Muted.Render("l: log in   u: sign up   tab: explore")
	if m.user != "" {
		greeting = m.styles.Success.Render("Welcome back, " + m.user + "!")
	}
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)

	body := strings.Join(lines[:half], "\n") + "\n\n" +
		center.Render(logo) + "\n" +
		center.Render(tagline) + "\n" +
		center.Render(greeting) + "\n\n" +
		strings.Join(lines[half:], "\n")
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(body)
}
