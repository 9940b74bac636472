package learning

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
)

// ResetRequestMsg asks the root model to reset progress; the progress
// module confirms before touching anything.
type ResetRequestMsg struct{}

// Model shows level, achievements and the progress charts.
type Model struct {
	styles      theme.Styles
	level       progress.Model
	learning    *navdto.Learning
	placeholder *navdto.Placeholder
	width       int
	height      int
}

func New(styles theme.Styles) Model {
	m := Model{styles: styles}
	m.level = newBar(styles)
	return m
}

func newBar(s theme.Styles) progress.Model {
	return progress.New(progress.WithSolidFill(s.Palette.Primary), progress.WithoutPercentage())
}

func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.level = newBar(s)
	m.level.Width = max(m.width/2-8, 10)
}

func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.level.Width = max(w/2-8, 10)
}

func (m *Model) SetView(vm navdto.ViewModel) {
	m.learning = vm.Learning
	m.placeholder = vm.Placeholder
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "R" && m.learning != nil {
		return m, func() tea.Msg { return ResetRequestMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	if m.placeholder != nil {
		return components.Placeholder(m.styles, m.placeholder, m.width, m.height)
	}
	if m.learning == nil {
		return ""
	}
	o := m.learning.Overview
	s := m.learning.Snapshot
	half := max(m.width/2-2, 20)

	var left strings.Builder
	left.WriteString(m.styles.Title.Render(o.Name) + "  " + m.styles.Muted.Render(o.Profile) + "\n\n")
	fmt.Fprintf(&left, "Level %d  ·  %d points\n", o.Level, o.Points)
	left.WriteString(m.level.ViewAs(o.LevelPercent/100) + "\n")
	left.WriteString(m.styles.Muted.Render(fmt.Sprintf("%.0f%% to level %d", o.LevelPercent, o.NextLevel)) + "\n\n")
	left.WriteString(m.styles.Title.Render("Achievements") + "\n")
	for _, a := range o.Achievements {
		if a.Unlocked {
			left.WriteString(m.styles.Success.Render("★ "+a.Name) + "\n")
		} else {
			left.WriteString(m.styles.Muted.Render("☆ "+a.Name) + "\n")
		}
	}
	left.WriteString("\n" + m.styles.Title.Render("Stats") + "\n")
	fmt.Fprintf(&left, "Lines of code:        %d\n", s.LinesOfCode)
	fmt.Fprintf(&left, "Challenges completed: %d\n", s.ChallengesCompleted)
	fmt.Fprintf(&left, "Study time:           %dh\n", s.StudyTimeHours)

	var right strings.Builder
	right.WriteString(m.styles.Title.Render("Languages") + "\n")
	right.WriteString(components.LanguageBars(m.styles, s.Languages, half-4) + "\n\n")
	right.WriteString(m.styles.Title.Render("This week (minutes)") + "\n")
	right.WriteString(components.ActivityColumns(m.styles, s.DailyActivityMinutes, 6))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Pane.Width(half).Render(left.String()),
		m.styles.Pane.Width(half).Render(right.String()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.styles.Muted.Render("R: reset progress"))
}
