package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"syntaxlabs/internal/modules/playground/domain"
	playgrounddto "syntaxlabs/internal/modules/playground/dto"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	playgroundout "syntaxlabs/internal/modules/playground/port/out"
	"syntaxlabs/internal/modules/playground/service"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	"syntaxlabs/internal/platform/clock"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/id"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
)

type Deps struct {
	Dispatcher *service.Dispatcher
	Assistant  *service.Assistant
	Code       playgroundout.CodeStore
	Session    sessionin.Usecase
	Confirm    prompt.Confirmer
	Clock      clock.Clock
	IDs        id.Generator
	Log        *logger.Logger
}

// Interactor holds the programming view state. The mutex guards buffer,
// console and conversation; it is never held across assistant delays.
type Interactor struct {
	deps Deps
	log  *logger.Logger

	mu           sync.Mutex
	buffer       domain.EditorBuffer
	console      domain.Console
	conversation []playgrounddto.AssistantMessage
}

func NewInteractor(deps Deps) playgroundin.Usecase {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{deps: deps, log: log.With("module", "playground")}
}

func (i *Interactor) loggedIn(ctx context.Context) (bool, error) {
	if i.deps.Session == nil {
		return false, nil
	}
	_, err := i.deps.Session.Current(ctx)
	if errors.Is(err, apperrors.ErrNoSession) {
		return false, nil
	}
	return err == nil, err
}

func (i *Interactor) Languages(ctx context.Context) ([]playgrounddto.LanguageOutput, error) {
	logged, err := i.loggedIn(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]playgrounddto.LanguageOutput, 0, domain.Count)
	for _, l := range domain.All() {
		info := l.Info()
		out = append(out, playgrounddto.LanguageOutput{
			Name:        info.Name,
			Slug:        l.Slug(),
			Description: info.Description,
			Extension:   info.Extension,
			Premium:     l.Premium(),
			Locked:      l.Premium() && !logged,
		})
	}
	return out, nil
}

func (i *Interactor) resolve(ctx context.Context, name string) (domain.Language, error) {
	lang, err := domain.ParseLanguage(name)
	if err != nil {
		return 0, apperrors.Validation("language", "Unknown language: "+name)
	}
	if lang.Premium() {
		logged, err := i.loggedIn(ctx)
		if err != nil {
			return 0, err
		}
		if !logged {
			return 0, apperrors.ErrPremiumLanguage
		}
	}
	return lang, nil
}

func (i *Interactor) Select(ctx context.Context, name string) (playgrounddto.EditorOutput, error) {
	lang, err := i.resolve(ctx, name)
	if err != nil {
		return playgrounddto.EditorOutput{}, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.buffer.Select(lang)
	i.log.Debug("language selected", "language", lang.String())
	return i.editorLocked(), nil
}

func (i *Interactor) Edit(_ context.Context, source string) (playgrounddto.EditorOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.buffer.Language == nil {
		return playgrounddto.EditorOutput{}, apperrors.ErrNoLanguage
	}
	i.buffer.Edit(source)
	return i.editorLocked(), nil
}

func (i *Interactor) Editor(context.Context) playgrounddto.EditorOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.editorLocked()
}

func (i *Interactor) editorLocked() playgrounddto.EditorOutput {
	out := playgrounddto.EditorOutput{Source: i.buffer.Source, Dirty: i.buffer.Dirty}
	if i.buffer.Language != nil {
		out.Language = i.buffer.Language.String()
	}
	return out
}

func (i *Interactor) Run(ctx context.Context) (playgrounddto.RunOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.buffer.Language == nil {
		return playgrounddto.RunOutput{}, apperrors.ErrNoLanguage
	}
	lang := *i.buffer.Language
	if strings.TrimSpace(i.buffer.Source) == "" {
		return playgrounddto.RunOutput{}, apperrors.ErrEmptySource
	}

	i.pushLocked(domain.EntryInfo, "Running code...")
	result, err := i.deps.Dispatcher.Run(ctx, lang, i.buffer.Source)
	out := playgrounddto.RunOutput{Language: lang.String(), Result: result}
	if err != nil {
		i.pushLocked(domain.EntryError, apperrors.UserMessage(err))
		i.log.Info("run failed", "language", lang.String(), "error", err)
		out.Console = i.consoleLocked()
		return out, err
	}
	i.pushLocked(domain.EntrySuccess, result)
	out.Console = i.consoleLocked()
	return out, nil
}

func (i *Interactor) Execute(ctx context.Context, language, source string) (string, error) {
	lang, err := i.resolve(ctx, language)
	if err != nil {
		return "", err
	}
	return i.deps.Dispatcher.Run(ctx, lang, source)
}

func (i *Interactor) Save(ctx context.Context) (playgrounddto.SavedCodeOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.buffer.Language == nil {
		return playgrounddto.SavedCodeOutput{}, apperrors.ErrNoLanguage
	}
	if i.buffer.Source == "" {
		return playgrounddto.SavedCodeOutput{}, apperrors.ErrEmptySource
	}
	code, err := i.deps.Code.Load(ctx)
	if err != nil {
		return playgrounddto.SavedCodeOutput{}, err
	}
	name := i.buffer.Language.String()
	entry := domain.SavedCode{
		Code:      i.buffer.Source,
		Timestamp: i.deps.Clock.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Language:  name,
	}
	code[name] = entry
	if err := i.deps.Code.Save(ctx, code); err != nil {
		return playgrounddto.SavedCodeOutput{}, err
	}
	i.buffer.Dirty = false
	return toSavedOutput(entry), nil
}

func (i *Interactor) Saved(ctx context.Context) ([]playgrounddto.SavedCodeOutput, error) {
	code, err := i.deps.Code.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []playgrounddto.SavedCodeOutput{}
	for _, l := range domain.All() {
		if entry, ok := code[l.String()]; ok {
			out = append(out, toSavedOutput(entry))
		}
	}
	return out, nil
}

func (i *Interactor) Clear(ctx context.Context) (playgrounddto.EditorOutput, error) {
	ok, err := i.deps.Confirm.Confirm(ctx, "Are you sure you want to clear the code?")
	if err != nil {
		return playgrounddto.EditorOutput{}, err
	}
	if !ok {
		return playgrounddto.EditorOutput{}, apperrors.ErrNotConfirmed
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.buffer.Edit("")
	i.pushLocked(domain.EntryInfo, "Editor cleared!")
	return i.editorLocked(), nil
}

func (i *Interactor) ClearConsole(context.Context) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.console.Clear()
}

func (i *Interactor) Console(context.Context) []playgrounddto.ConsoleEntry {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.consoleLocked()
}

func (i *Interactor) Leave(context.Context) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.buffer.Reset()
}

func (i *Interactor) Challenges(_ context.Context, language string) ([]playgrounddto.ChallengeOutput, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, apperrors.Validation("language", "Unknown language: "+language)
	}
	out := []playgrounddto.ChallengeOutput{}
	for _, c := range domain.ChallengesFor(lang) {
		out = append(out, playgrounddto.ChallengeOutput{
			ID:          c.ID,
			Language:    c.Language.String(),
			Title:       c.Title,
			Description: c.Description,
			Difficulty:  c.Difficulty,
			Points:      c.Points,
		})
	}
	return out, nil
}

// LoadChallenge puts the challenge scaffold in the editor, switching to the
// challenge's language when none is selected.
func (i *Interactor) LoadChallenge(_ context.Context, challengeID string) (playgrounddto.EditorOutput, error) {
	challenge, ok := domain.FindChallenge(challengeID)
	if !ok {
		return playgrounddto.EditorOutput{}, apperrors.ErrNotFound
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.buffer.Language == nil {
		i.buffer.Select(challenge.Language)
	}
	i.buffer.Edit(challenge.Scaffold())
	return i.editorLocked(), nil
}

func (i *Interactor) AskAssistant(_ context.Context, question string) ([]playgrounddto.AssistantMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperrors.ErrEmptySource
	}
	asked := i.message("user", question)
	answer := i.message("assistant", i.deps.Assistant.Answer(question))
	i.mu.Lock()
	i.conversation = append(i.conversation, asked, answer)
	i.mu.Unlock()
	return []playgrounddto.AssistantMessage{asked, answer}, nil
}

func (i *Interactor) AnalyzeWithAssistant(context.Context) (playgrounddto.AssistantMessage, error) {
	i.mu.Lock()
	source := i.buffer.Source
	i.mu.Unlock()
	if strings.TrimSpace(source) == "" {
		return playgrounddto.AssistantMessage{}, apperrors.ErrEmptySource
	}
	analysis := i.message("assistant", i.deps.Assistant.Analyze(source))
	i.mu.Lock()
	i.conversation = append(i.conversation, analysis)
	i.mu.Unlock()
	return analysis, nil
}

func (i *Interactor) Conversation(context.Context) []playgrounddto.AssistantMessage {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]playgrounddto.AssistantMessage, len(i.conversation))
	copy(out, i.conversation)
	return out
}

func (i *Interactor) message(sender, text string) playgrounddto.AssistantMessage {
	return playgrounddto.AssistantMessage{ID: i.deps.IDs.New(), Sender: sender, Text: text, At: i.deps.Clock.Now()}
}

func (i *Interactor) pushLocked(kind domain.EntryKind, message string) {
	i.console.Push(domain.ConsoleEntry{Kind: kind, Message: message, At: i.deps.Clock.Now()})
}

func (i *Interactor) consoleLocked() []playgrounddto.ConsoleEntry {
	entries := i.console.Entries()
	out := make([]playgrounddto.ConsoleEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, playgrounddto.ConsoleEntry{Kind: string(e.Kind), Message: e.Message, At: e.At})
	}
	return out
}

func toSavedOutput(s domain.SavedCode) playgrounddto.SavedCodeOutput {
	return playgrounddto.SavedCodeOutput{Language: s.Language, Code: s.Code, Timestamp: s.Timestamp}
}
