package components

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syntaxlabs/internal/ui/theme"
)

// ConfirmRequest is one pending yes/no question from a usecase.
type ConfirmRequest struct {
	Question string
	reply    chan bool
}

// ConfirmAskMsg carries a question into the Bubble Tea loop.
type ConfirmAskMsg struct{ Request ConfirmRequest }

// Confirmer answers usecase confirmations through the modal. Usecases call
// Confirm from tea.Cmd goroutines and block until the user answers.
type Confirmer struct {
	requests chan ConfirmRequest
}

func NewConfirmer() *Confirmer {
	return &Confirmer{requests: make(chan ConfirmRequest)}
}

func (c *Confirmer) Confirm(ctx context.Context, question string) (bool, error) {
	req := ConfirmRequest{Question: question, reply: make(chan bool, 1)}
	select {
	case c.requests <- req:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	select {
	case ok := <-req.reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Wait delivers the next question as a ConfirmAskMsg.
func (c *Confirmer) Wait() tea.Cmd {
	return func() tea.Msg {
		return ConfirmAskMsg{Request: <-c.requests}
	}
}

// ConfirmModal shows one question and sends the answer back.
type ConfirmModal struct {
	pending *ConfirmRequest
	styles  theme.Styles
}

func NewConfirmModal(styles theme.Styles) ConfirmModal {
	return ConfirmModal{styles: styles}
}

func (m ConfirmModal) Visible() bool { return m.pending != nil }

func (m *ConfirmModal) Open(req ConfirmRequest) { m.pending = &req }

func (m *ConfirmModal) SetStyles(s theme.Styles) { m.styles = s }

// Update answers on y/enter or n/esc. It reports whether the modal closed.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.pending == nil {
		return m, false
	}
	switch key.String() {
	case "y", "Y", "enter":
		m.pending.reply <- true
	case "n", "N", "esc":
		m.pending.reply <- false
	default:
		return m, false
	}
	m.pending = nil
	return m, true
}

func (m ConfirmModal) View() string {
	if m.pending == nil {
		return ""
	}
	body := m.styles.Title.Render("Confirm") + "\n\n" + m.pending.Question + "\n\n" +
		m.styles.Muted.Render("y/enter: yes   n/esc: no")
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.Palette.Warning)).
		Background(m.styles.Surface).
		Foreground(m.styles.Text).
		Padding(1, 2).
		Render(body)
}
