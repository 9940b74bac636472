package components

import (
	tea "github.com/charmbracelet/bubbletea"

	apperrors "syntaxlabs/internal/platform/errors"
)

// NoticeMsg asks the root model to show a banner.
type NoticeMsg struct {
	Kind    string
	Message string
}

func Notice(kind, message string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Kind: kind, Message: message} }
}

// ErrorNotice turns err into a banner. Validation problems and missing
// input are warnings, everything else is an error.
func ErrorNotice(err error) tea.Cmd {
	kind := "error"
	if apperrors.IsUserError(err) {
		kind = "warning"
	}
	return Notice(kind, apperrors.UserMessage(err))
}
