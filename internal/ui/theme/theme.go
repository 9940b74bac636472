package theme

import (
	"github.com/charmbracelet/lipgloss"

	navdomain "syntaxlabs/internal/modules/navigation/domain"
)

// Styles is the lipgloss rendition of a navigation palette. Views rebuild
// their styles whenever the theme changes.
type Styles struct {
	Palette navdomain.Palette
	Dark    bool

	Base    lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Accent  lipgloss.Color

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Bar        lipgloss.Style
}

func New(theme string) Styles {
	t := navdomain.ParseTheme(theme)
	p := t.Palette()
	s := Styles{
		Palette: p,
		Dark:    t == navdomain.ThemeDark,
		Base:    lipgloss.Color(p.Background),
		Surface: lipgloss.Color(p.Surface),
		Text:    lipgloss.Color(p.Text),
		Accent:  lipgloss.Color(p.Primary),
	}
	s.App = lipgloss.NewStyle().Background(s.Base).Foreground(s.Text).Padding(1, 2)
	s.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Grid)).
		Background(s.Surface).
		Foreground(s.Text).
		Padding(1)
	s.PaneActive = s.Pane.BorderForeground(s.Accent)
	s.Title = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	s.Hot = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning)).Bold(true)
	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success))
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning))
	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true)
	s.Bar = lipgloss.NewStyle().Background(s.Surface).Foreground(s.Text)
	return s
}

// Series returns the chart color for series i.
func (s Styles) Series(i int) lipgloss.Style {
	colors := s.Palette.Series
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)]))
}

// GlamourStyle is the glamour standard style matching the theme.
func (s Styles) GlamourStyle() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}
