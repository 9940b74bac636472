package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Always answers every question with the same value (--yes, tests).
type Always bool

func (a Always) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

// Terminal asks on out and reads a y/N answer from in.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(_ context.Context, question string) (bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

// Scripted replays answers in order; once exhausted it declines.
type Scripted struct {
	Answers []bool
	Asked   []string
}

func (s *Scripted) Confirm(_ context.Context, question string) (bool, error) {
	s.Asked = append(s.Asked, question)
	if len(s.Answers) == 0 {
		return false, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}
