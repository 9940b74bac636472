package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syntaxlabs/internal/ui/theme"
)

type FormKind int

const (
	FormLogin FormKind = iota
	FormRegister
)

var profiles = []string{"student", "professional", "company"}

// FormSubmitMsg carries the raw field values; validation is the session
// module's job.
type FormSubmitMsg struct {
	Kind     FormKind
	Profile  string
	Name     string
	Email    string
	Password string
	Confirm  string
}

type FormCancelMsg struct{}

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldConfirm
)

// Form is the login/register modal. The profile is picked with ←/→.
type Form struct {
	kind    FormKind
	profile int
	inputs  []textinput.Model
	focus   int
	visible bool
	styles  theme.Styles
}

func NewForm(styles theme.Styles) Form {
	return Form{styles: styles}
}

func (f Form) Visible() bool { return f.visible }

func (f *Form) SetStyles(s theme.Styles) { f.styles = s }

func (f *Form) Open(kind FormKind) tea.Cmd {
	f.kind = kind
	f.visible = true
	f.focus = 0
	count := 3
	if kind == FormRegister {
		count = 4
	}
	f.inputs = make([]textinput.Model, count)
	placeholders := []string{"Name", "Email", "Password", "Confirm password"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		if i >= fieldPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs[i] = ti
	}
	return f.inputs[0].Focus()
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if !f.visible {
		return f, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			f.visible = false
			return f, func() tea.Msg { return FormCancelMsg{} }
		case "left":
			if f.inputs[f.focus].Value() == "" {
				f.profile = (f.profile + len(profiles) - 1) % len(profiles)
				return f, nil
			}
		case "right":
			if f.inputs[f.focus].Value() == "" {
				f.profile = (f.profile + 1) % len(profiles)
				return f, nil
			}
		case "tab", "down":
			return f, f.move(1)
		case "shift+tab", "up":
			return f, f.move(-1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f, f.move(1)
			}
			f.visible = false
			submit := f.values()
			return f, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f Form) values() FormSubmitMsg {
	out := FormSubmitMsg{
		Kind:     f.kind,
		Profile:  profiles[f.profile],
		Name:     strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:    strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Password: f.inputs[fieldPassword].Value(),
	}
	if f.kind == FormRegister {
		out.Confirm = f.inputs[fieldConfirm].Value()
	}
	return out
}

func (f Form) View() string {
	if !f.visible {
		return ""
	}
	title := "Log in"
	if f.kind == FormRegister {
		title = "Create account"
	}
	var sb strings.Builder
	sb.WriteString(f.styles.Title.Render(title) + "\n\n")
	for i, p := range profiles {
		label := " " + p + " "
		if i == f.profile {
			sb.WriteString(f.styles.Hot.Render("[" + label + "]"))
		} else {
			sb.WriteString(f.styles.Muted.Render(" " + label + " "))
		}
	}
	sb.WriteString("\n\n")
	for _, in := range f.inputs {
		sb.WriteString(in.View() + "\n")
	}
	sb.WriteString("\n" + f.styles.Muted.Render("←/→ profile  tab: next field  enter: submit  esc: cancel"))
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(f.styles.Accent).
		Background(f.styles.Surface).
		Foreground(f.styles.Text).
		Padding(1, 2).
		Width(56).
		Render(sb.String())
}
