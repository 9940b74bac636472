package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"syntaxlabs/internal/ui/components"
	"syntaxlabs/internal/ui/theme"
)

func typeText(t *testing.T, f components.Form, text string) components.Form {
	t.Helper()
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return f
}

func TestFormSubmitsLogin(t *testing.T) {
	t.Parallel()
	form := components.NewForm(theme.New("dark"))
	form.Open(components.FormLogin)

	form = typeText(t, form, "Ana")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form = typeText(t, form, "ana@example.com")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	form = typeText(t, form, "secret1")
	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the last field must submit")
	}
	submit, ok := cmd().(components.FormSubmitMsg)
	if !ok {
		t.Fatalf("expected FormSubmitMsg")
	}
	if submit.Kind != components.FormLogin || submit.Name != "Ana" || submit.Email != "ana@example.com" || submit.Password != "secret1" {
		t.Fatalf("unexpected submit %+v", submit)
	}
	if submit.Profile != "student" {
		t.Fatalf("default profile should be student, got %q", submit.Profile)
	}
	if form.Visible() {
		t.Fatalf("form should close after submit")
	}
}

func TestFormCyclesProfileAndCancels(t *testing.T) {
	t.Parallel()
	form := components.NewForm(theme.New("dark"))
	form.Open(components.FormRegister)
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRight})

	form, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if form.Visible() {
		t.Fatalf("esc must close the form")
	}
	if _, ok := cmd().(components.FormCancelMsg); !ok {
		t.Fatalf("expected FormCancelMsg")
	}

	form.Open(components.FormRegister)
	for _, text := range []string{"Bia", "bia@example.com", "secret1", "secret1"} {
		form = typeText(t, form, text)
		var c tea.Cmd
		form, c = form.Update(tea.KeyMsg{Type: tea.KeyEnter})
		cmd = c
	}
	submit := cmd().(components.FormSubmitMsg)
	if submit.Profile != "professional" || submit.Confirm != "secret1" {
		t.Fatalf("unexpected register submit %+v", submit)
	}
}
