package service

import (
	"fmt"
	"strings"
	"time"

	"syntaxlabs/internal/platform/clock"
)

type AssistantDelays struct {
	Answer   time.Duration
	Analysis time.Duration
}

// Assistant is the canned programming helper. It waits out a fixed delay
// and answers from templates; there is no model behind it.
type Assistant struct {
	sleeper clock.Sleeper
	delays  AssistantDelays
	intn    func(n int) int
}

func NewAssistant(sleeper clock.Sleeper, delays AssistantDelays, intn func(n int) int) *Assistant {
	return &Assistant{sleeper: sleeper, delays: delays, intn: intn}
}

func (a *Assistant) Answer(question string) string {
	a.sleeper.Sleep(a.delays.Answer)
	templates := []string{
		"Answer for: %q\n\nSuggestions:\n1. Validate user input\n2. Use descriptive names\n3. Test with different cases",
		"About: %q\n\nRecommendations:\n- Review the documentation\n- Test different cases\n- Consider error handling",
	}
	return fmt.Sprintf(templates[a.intn(len(templates))], question)
}

func (a *Assistant) Analyze(code string) string {
	a.sleeper.Sleep(a.delays.Analysis)
	return fmt.Sprintf(
		"Analysis of your code:\n\nStatistics:\n- %d lines of code\n- %d words\n\nSuggestions:\n1. Add comments to explain complex logic\n2. Use descriptive variable names\n3. Keep practicing!",
		len(strings.Split(code, "\n")),
		len(strings.Split(code, " ")),
	)
}
