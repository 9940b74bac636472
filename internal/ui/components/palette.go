package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syntaxlabs/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

type paletteCommand struct {
	name string
	args string
	help string
}

// paletteCommands mirrors executePalette in app/model.go.
var paletteCommands = []paletteCommand{
	{"tab", "<id>", "open a tab by id"},
	{"theme:toggle", "", "switch between dark and light"},
	{"login", "", "open the login form"},
	{"register", "", "open the sign-up form"},
	{"logout", "", "end the session"},
	{"lang", "<name>", "pick an editor language"},
	{"challenge", "<id>", "load a challenge scaffold"},
	{"run", "", "run the editor buffer"},
	{"save", "", "save the editor buffer"},
	{"ask", "<question>", "ask the assistant"},
	{"analyze", "", "let the assistant read your code"},
	{"report:progress", "", "generate the progress report"},
	{"report:code", "", "generate a report of the editor buffer"},
	{"progress:reset", "", "zero all progress"},
	{"export", "", "export account data as JSON"},
	{"import", "<file>", "import an exported JSON file"},
	{"rename", "<name>", "change the profile name"},
	{"account:delete", "", "delete the account and its data"},
}

const paletteRows = 6

// Palette is the ':' command overlay. Typing filters commands by prefix,
// up/down pick one and tab completes it.
type Palette struct {
	input    textinput.Model
	styles   theme.Styles
	visible  bool
	width    int
	selected int
}

func NewPalette(styles theme.Styles) Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 256
	ti.Prompt = ": "
	return Palette{input: ti, styles: styles}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.selected = 0
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) SetStyles(s theme.Styles) { p.styles = s }

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// matches returns the commands whose name starts with the first word typed.
func (p Palette) matches() []paletteCommand {
	word := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	var out []paletteCommand
	for _, c := range paletteCommands {
		if strings.HasPrefix(c.name, word) {
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.selected > 0 {
				p.selected--
			}
			return p, nil
		case "down":
			if p.selected < len(p.matches())-1 {
				p.selected++
			}
			return p, nil
		case "tab":
			if m := p.matches(); len(m) > 0 {
				c := m[min(p.selected, len(m)-1)]
				value := c.name
				if c.args != "" {
					value += " "
				}
				p.input.SetValue(value)
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if n := len(p.matches()); p.selected >= n {
		p.selected = max(n-1, 0)
	}
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Command Palette") + "\n")
	sb.WriteString(p.input.View() + "\n")

	matching := p.matches()
	if len(matching) == 0 {
		sb.WriteString("\n" + p.styles.Warning.Render("  no such command"))
	}
	start := 0
	if p.selected >= paletteRows {
		start = p.selected - paletteRows + 1
	}
	for i := start; i < len(matching) && i < start+paletteRows; i++ {
		c := matching[i]
		line := strings.TrimSpace(c.name + " " + c.args)
		if i == p.selected {
			sb.WriteString("\n" + p.styles.Hot.Render("› "+line) + "  " + p.styles.Muted.Render(c.help))
		} else {
			sb.WriteString("\n" + p.styles.Muted.Render("  "+line))
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Accent).
		Background(p.styles.Surface).
		Foreground(p.styles.Text).
		Padding(0, 1).
		Width(w - 2).
		Render(sb.String())
}
