package programming

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	playgrounddto "syntaxlabs/internal/modules/playground/dto"
	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the slice of the playground usecase this view drives.
type Port interface {
	Select(ctx context.Context, language string) (playgrounddto.EditorOutput, error)
	Edit(ctx context.Context, source string) (playgrounddto.EditorOutput, error)
	Run(ctx context.Context) (playgrounddto.RunOutput, error)
	Save(ctx context.Context) (playgrounddto.SavedCodeOutput, error)
	Clear(ctx context.Context) (playgrounddto.EditorOutput, error)
	ClearConsole(ctx context.Context)
	Console(ctx context.Context) []playgrounddto.ConsoleEntry
	Challenges(ctx context.Context, language string) ([]playgrounddto.ChallengeOutput, error)
	LoadChallenge(ctx context.Context, id string) (playgrounddto.EditorOutput, error)
	AskAssistant(ctx context.Context, question string) ([]playgrounddto.AssistantMessage, error)
	AnalyzeWithAssistant(ctx context.Context) (playgrounddto.AssistantMessage, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RunDoneMsg struct {
	Out playgrounddto.RunOutput
	Err error
}

type SavedMsg struct {
	Saved playgrounddto.SavedCodeOutput
	Err   error
}

type ClearedMsg struct {
	Editor playgrounddto.EditorOutput
	Err    error
}

type AssistantMsg struct {
	Messages []playgrounddto.AssistantMessage
	Err      error
}

// CodeReportRequestMsg asks the root model for a code report of the buffer.
type CodeReportRequestMsg struct{}

// ─── list item ───────────────────────────────────────────────────────────────

type languageItem struct{ lang playgrounddto.LanguageOutput }

func (i languageItem) Title() string {
	if i.lang.Locked {
		return "🔒 " + i.lang.Name
	}
	return i.lang.Name
}

func (i languageItem) Description() string {
	d := i.lang.Extension
	if i.lang.Premium {
		d += "  premium"
	}
	return d
}

func (i languageItem) FilterValue() string { return i.lang.Name }

// ─── focus ───────────────────────────────────────────────────────────────────

type focus int

const (
	focusList focus = iota
	focusEditor
	focusQuestion
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port         Port
	styles       theme.Styles
	list         list.Model
	editor       textarea.Model
	question     textinput.Model
	spinner      spinner.Model
	focus        focus
	language     string
	challenges   []playgrounddto.ChallengeOutput
	console      []playgrounddto.ConsoleEntry
	saved        []playgrounddto.SavedCodeOutput
	conversation []playgrounddto.AssistantMessage
	busy         string
	width        int
	height       int
}

func New(port Port, styles theme.Styles) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Languages"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ta := textarea.New()
	ta.Placeholder = "Select a language to start coding"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0

	q := textinput.New()
	q.Placeholder = "Ask the assistant…"
	q.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{port: port, list: l, editor: ta, question: q, spinner: sp}
	m.SetStyles(styles)
	return m
}

func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
	m.list.Styles.Title = s.Title
	m.spinner.Style = lipgloss.NewStyle().Foreground(s.Accent)
}

func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	listW := max(w/5, 18)
	m.list.SetSize(listW, max(h-2, 4))
	editorW := max(w-listW-max(w/4, 24)-8, 20)
	m.editor.SetWidth(editorW)
	m.editor.SetHeight(max(h*3/5-2, 5))
	m.question.Width = max(w/4-4, 16)
}

func (m *Model) SetView(vm navdto.ViewModel) {
	p := vm.Programming
	if p == nil {
		return
	}
	items := make([]list.Item, len(p.Languages))
	for i, l := range p.Languages {
		items[i] = languageItem{lang: l}
	}
	m.list.SetItems(items)
	m.console = p.Console
	m.saved = p.Saved
	m.applyEditor(p.Editor)
}

// Capturing reports whether text input owns the keyboard.
func (m Model) Capturing() bool { return m.focus != focusList }

func (m *Model) applyEditor(e playgrounddto.EditorOutput) {
	if e.Language != m.language {
		m.language = e.Language
		m.challenges = nil
		if e.Language != "" {
			m.challenges, _ = m.port.Challenges(context.Background(), e.Language)
		}
	}
	if m.editor.Value() != e.Source {
		m.editor.SetValue(e.Source)
	}
	if e.Language == "" && m.focus == focusEditor {
		m.focus = focusList
		m.editor.Blur()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RunDoneMsg:
		m.busy = ""
		m.console = msg.Out.Console
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		m.replaceSaved(msg.Saved)
		return m, components.Notice("success", "Code saved!")

	case ClearedMsg:
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		m.applyEditor(msg.Editor)
		m.console = m.port.Console(context.Background())
		return m, nil

	case AssistantMsg:
		m.busy = ""
		if msg.Err != nil {
			return m, components.ErrorNotice(msg.Err)
		}
		m.conversation = append(m.conversation, msg.Messages...)
		return m, nil

	case spinner.TickMsg:
		if m.busy != "" {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleShortcut(msg); handled {
			return m, cmd
		}
	}

	switch m.focus {
	case focusEditor:
		return m.updateEditor(msg)
	case focusQuestion:
		return m.updateQuestion(msg)
	}
	return m.updateList(msg)
}

func (m *Model) handleShortcut(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+r":
		m.busy = "Running code..."
		return tea.Batch(m.runCmd(), m.spinner.Tick), true
	case "ctrl+s":
		return m.saveCmd(), true
	case "ctrl+k":
		return m.clearCmd(), true
	case "ctrl+l":
		m.port.ClearConsole(context.Background())
		m.console = nil
		return nil, true
	case "ctrl+a":
		m.busy = "Analyzing your code..."
		return tea.Batch(m.analyzeCmd(), m.spinner.Tick), true
	case "ctrl+q":
		m.setFocus(focusQuestion)
		return m.question.Focus(), true
	case "ctrl+g":
		return func() tea.Msg { return CodeReportRequestMsg{} }, true
	}
	return nil, false
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(languageItem)
			if !ok {
				return m, nil
			}
			editor, err := m.port.Select(context.Background(), item.lang.Name)
			if err != nil {
				return m, components.ErrorNotice(err)
			}
			m.applyEditor(editor)
			m.setFocus(focusEditor)
			return m, tea.Batch(m.editor.Focus(), components.Notice("info", item.lang.Name+" selected"))
		case "e":
			if m.language != "" {
				m.setFocus(focusEditor)
				return m, m.editor.Focus()
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.setFocus(focusList)
		return m, nil
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		if _, err := m.port.Edit(context.Background(), after); err != nil {
			return m, tea.Batch(cmd, components.ErrorNotice(err))
		}
	}
	return m, cmd
}

func (m Model) updateQuestion(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.setFocus(focusList)
			return m, nil
		case "enter":
			question := m.question.Value()
			m.question.SetValue("")
			m.setFocus(focusList)
			m.busy = "The assistant is thinking..."
			return m, tea.Batch(m.askCmd(question), m.spinner.Tick)
		}
	}
	var cmd tea.Cmd
	m.question, cmd = m.question.Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f != focusEditor {
		m.editor.Blur()
	}
	if f != focusQuestion {
		m.question.Blur()
	}
}

// LoadChallenge fills the editor with a challenge scaffold.
func (m *Model) LoadChallenge(id string) tea.Cmd {
	editor, err := m.port.LoadChallenge(context.Background(), id)
	if err != nil {
		return components.ErrorNotice(err)
	}
	m.applyEditor(editor)
	m.setFocus(focusEditor)
	return tea.Batch(m.editor.Focus(), components.Notice("info", "Challenge "+id+" loaded"))
}

// SelectLanguage is the palette entry point for choosing a language.
func (m *Model) SelectLanguage(name string) tea.Cmd {
	editor, err := m.port.Select(context.Background(), name)
	if err != nil {
		return components.ErrorNotice(err)
	}
	m.applyEditor(editor)
	m.setFocus(focusEditor)
	return m.editor.Focus()
}

func (m *Model) Ask(question string) tea.Cmd {
	m.busy = "The assistant is thinking..."
	return tea.Batch(m.askCmd(question), m.spinner.Tick)
}

func (m *Model) Analyze() tea.Cmd {
	m.busy = "Analyzing your code..."
	return tea.Batch(m.analyzeCmd(), m.spinner.Tick)
}

func (m *Model) Run() tea.Cmd {
	m.busy = "Running code..."
	return tea.Batch(m.runCmd(), m.spinner.Tick)
}

func (m Model) Save() tea.Cmd { return m.saveCmd() }

func (m *Model) replaceSaved(s playgrounddto.SavedCodeOutput) {
	for i, existing := range m.saved {
		if existing.Language == s.Language {
			m.saved[i] = s
			return
		}
	}
	m.saved = append(m.saved, s)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	listW := max(m.width/5, 18)
	sideW := max(m.width/4, 24)

	left := m.list.View()
	if len(m.challenges) > 0 {
		var sb strings.Builder
		sb.WriteString("\n" + m.styles.Title.Render("Challenges") + "\n")
		for _, c := range m.challenges {
			fmt.Fprintf(&sb, "%s %s\n", m.styles.Hot.Render(c.ID), c.Title)
			sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s · %d pts", c.Difficulty, c.Points)) + "\n")
		}
		left = lipgloss.JoinVertical(lipgloss.Left, left, sb.String())
	}

	editorPane := m.styles.Pane
	if m.focus == focusEditor {
		editorPane = m.styles.PaneActive
	}
	title := "Editor"
	if m.language != "" {
		title = "Editor · " + m.language
	}
	center := lipgloss.JoinVertical(lipgloss.Left,
		editorPane.Render(m.styles.Title.Render(title)+"\n"+m.editor.View()),
		m.renderConsole(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listW).Render(left),
		center,
		lipgloss.NewStyle().Width(sideW).Render(m.renderAssistant()),
	) + "\n" + m.styles.Muted.Render("enter: select  e/esc: editor focus  ctrl+r run  ctrl+s save  ctrl+k clear  ctrl+l clear console  ctrl+a analyze  ctrl+q ask  ctrl+g report")
}

func (m Model) renderConsole() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Console") + "\n")
	if m.busy != "" {
		sb.WriteString(m.spinner.View() + " " + m.busy + "\n")
	}
	rows := max(m.height*2/5-4, 3)
	start := max(len(m.console)-rows, 0)
	for _, e := range m.console[start:] {
		style := m.styles.Muted
		switch e.Kind {
		case "success":
			style = m.styles.Success
		case "warning":
			style = m.styles.Warning
		case "error":
			style = m.styles.Error
		}
		sb.WriteString(m.styles.Muted.Render(e.At.Format("15:04:05")) + " " + style.Render(e.Message) + "\n")
	}
	return m.styles.Pane.Render(strings.TrimRight(sb.String(), "\n"))
}

func (m Model) renderAssistant() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Assistant") + "\n")
	if m.focus == focusQuestion {
		sb.WriteString(m.question.View() + "\n")
	}
	start := max(len(m.conversation)-6, 0)
	for _, msg := range m.conversation[start:] {
		who := m.styles.Hot.Render("you")
		if msg.Sender == "assistant" {
			who = m.styles.Success.Render("assistant")
		}
		sb.WriteString("\n" + who + "\n" + msg.Text + "\n")
	}
	if len(m.saved) > 0 {
		sb.WriteString("\n" + m.styles.Title.Render("Saved code") + "\n")
		for _, s := range m.saved {
			sb.WriteString(m.styles.Muted.Render(s.Language+" · "+s.Timestamp) + "\n")
		}
	}
	return m.styles.Pane.Render(sb.String())
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) runCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Run(context.Background())
		if out.Console == nil {
			out.Console = m.port.Console(context.Background())
		}
		return RunDoneMsg{Out: out, Err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		saved, err := m.port.Save(context.Background())
		return SavedMsg{Saved: saved, Err: err}
	}
}

func (m Model) clearCmd() tea.Cmd {
	return func() tea.Msg {
		editor, err := m.port.Clear(context.Background())
		return ClearedMsg{Editor: editor, Err: err}
	}
}

func (m Model) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.port.AskAssistant(context.Background(), question)
		return AssistantMsg{Messages: msgs, Err: err}
	}
}

func (m Model) analyzeCmd() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.port.AnalyzeWithAssistant(context.Background())
		if err != nil {
			return AssistantMsg{Err: err}
		}
		return AssistantMsg{Messages: []playgrounddto.AssistantMessage{msg}}
	}
}
