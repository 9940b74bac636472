package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrNoSession       = errors.New("no active session")
	ErrUnknownTab      = errors.New("unknown tab")
	ErrMissingView     = errors.New("missing view element")
	ErrNoLanguage      = errors.New("no language selected")
	ErrEmptySource     = errors.New("empty source")
	ErrNotConfirmed    = errors.New("action not confirmed")
	ErrPremiumLanguage = errors.New("language requires login")
)

// ValidationError carries a user-facing message about a malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ExecutionError wraps a failure raised while evaluating submitted code.
type ExecutionError struct {
	Language string
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s execution: %v", e.Language, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// UserMessage returns the text that should be shown in a banner for err.
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	var xerr *ExecutionError
	if errors.As(err, &xerr) {
		return "Error: " + xerr.Err.Error()
	}
	switch {
	case errors.Is(err, ErrNoSession):
		return "Log in to continue."
	case errors.Is(err, ErrNoLanguage):
		return "Select a language first."
	case errors.Is(err, ErrEmptySource):
		return "Editor is empty. Write some code first."
	case errors.Is(err, ErrPremiumLanguage):
		return "This language is available after login."
	case errors.Is(err, ErrNotConfirmed):
		return "Cancelled."
	}
	return err.Error()
}

// IsUserError reports whether err is caused by user input or a declined
// prompt rather than by a failure.
func IsUserError(err error) bool {
	for _, target := range []error{ErrInvalidInput, ErrNoSession, ErrNoLanguage, ErrEmptySource, ErrPremiumLanguage, ErrNotConfirmed, ErrUnknownTab, ErrNotFound} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
