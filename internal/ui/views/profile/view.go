package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	SaveSetting(ctx context.Context, key string, value bool) (progressdto.SettingsOutput, error)
	Rename(ctx context.Context, name string) (sessiondto.SessionOutput, error)
	Export(ctx context.Context, dir string) (progressdto.ExportOutput, error)
	DeleteAccount(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type SettingSavedMsg struct {
	Key      string
	Value    bool
	Settings progressdto.SettingsOutput
	Err      error
}

type RenamedMsg struct {
	User sessiondto.SessionOutput
	Err  error
}

type ExportedMsg struct {
	Out progressdto.ExportOutput
	Err error
}

type AccountDeletedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

var toggles = []struct {
	key   string
	label string
}{
	{"emailNotifications", "Email notifications"},
	{"darkMode", "Dark mode"},
	{"aiAssistance", "AI assistance"},
}

type Model struct {
	port        Port
	exportDir   string
	styles      theme.Styles
	user        *sessiondto.SessionOutput
	profile     *navdto.Profile
	placeholder *navdto.Placeholder
	cursor      int
	rename      textinput.Model
	renaming    bool
	width       int
	height      int
}

func New(port Port, exportDir string, styles theme.Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "New name"
	ti.CharLimit = 64
	return Model{port: port, exportDir: exportDir, styles: styles, rename: ti}
}

func (m *Model) SetStyles(s theme.Styles) { m.styles = s }

func (m *Model) SetSize(w, h int) { m.width, m.height = w, h }

func (m *Model) SetView(vm navdto.ViewModel) {
	m.user = vm.User
	m.profile = vm.Profile
	m.placeholder = vm.Placeholder
}

// Capturing reports whether the rename input owns the keyboard.
func (m Model) Capturing() bool { return m.renaming }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.profile == nil {
		return m, nil
	}
	if m.renaming {
		switch key.String() {
		case "esc":
			m.renaming = false
			m.rename.Blur()
			return m, nil
		case "enter":
			m.renaming = false
			m.rename.Blur()
			return m, m.renameCmd(m.rename.Value())
		}
		var cmd tea.Cmd
		m.rename, cmd = m.rename.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor + len(toggles) - 1) % len(toggles)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(toggles)
	case "enter", " ":
		t := toggles[m.cursor]
		return m, m.saveSettingCmd(t.key, !m.settingValue(t.key))
	case "n":
		m.renaming = true
		m.rename.SetValue(m.user.Name)
		return m, m.rename.Focus()
	case "x":
		return m, m.exportCmd()
	case "D":
		return m, m.deleteCmd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.placeholder != nil {
		return components.Placeholder(m.styles, m.placeholder, m.width, m.height)
	}
	if m.profile == nil || m.user == nil {
		return ""
	}
	u := m.user
	half := max(m.width/2-2, 24)

	var info strings.Builder
	info.WriteString(m.styles.Title.Render(u.Name) + "\n")
	info.WriteString(m.styles.Muted.Render(u.Email) + "\n\n")
	fmt.Fprintf(&info, "Profile:   %s\n", u.Profile)
	fmt.Fprintf(&info, "Joined:    %s\n", m.profile.JoinedAt.Format("2006-01-02"))
	fmt.Fprintf(&info, "Level:     %d (%d points)\n", u.Level, u.Points)
	if u.Specialty != "" {
		fmt.Fprintf(&info, "Specialty: %s\n", u.Specialty)
	}
	if u.Plan != "" {
		fmt.Fprintf(&info, "Plan:      %s (%s employees)\n", u.Plan, u.Employees)
	}
	if m.renaming {
		info.WriteString("\n" + m.rename.View() + "\n")
	}

	var settings strings.Builder
	settings.WriteString(m.styles.Title.Render("Settings") + "\n\n")
	for i, t := range toggles {
		box := "[ ]"
		if m.settingValue(t.key) {
			box = "[x]"
		}
		line := box + " " + t.label
		if i == m.cursor {
			line = m.styles.Hot.Render("› " + line)
		} else {
			line = "  " + line
		}
		settings.WriteString(line + "\n")
	}
	settings.WriteString("\n" + m.styles.Muted.Render("enter: toggle  n: rename  x: export data  D: delete account"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Pane.Width(half).Render(info.String()),
		m.styles.Pane.Width(half).Render(settings.String()),
	)
}

func (m Model) settingValue(key string) bool {
	s := m.profile.Settings
	switch key {
	case "emailNotifications":
		return s.EmailNotifications
	case "darkMode":
		return s.DarkMode
	case "aiAssistance":
		return s.AIAssistance
	}
	return false
}

func (m Model) saveSettingCmd(key string, value bool) tea.Cmd {
	return func() tea.Msg {
		settings, err := m.port.SaveSetting(context.Background(), key, value)
		return SettingSavedMsg{Key: key, Value: value, Settings: settings, Err: err}
	}
}

func (m Model) renameCmd(name string) tea.Cmd {
	return func() tea.Msg {
		user, err := m.port.Rename(context.Background(), name)
		return RenamedMsg{User: user, Err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Export(context.Background(), m.exportDir)
		return ExportedMsg{Out: out, Err: err}
	}
}

func (m Model) deleteCmd() tea.Cmd {
	return func() tea.Msg {
		return AccountDeletedMsg{Err: m.port.DeleteAccount(context.Background())}
	}
}
