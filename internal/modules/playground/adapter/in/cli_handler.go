package in

import (
	"context"

	playgrounddto "syntaxlabs/internal/modules/playground/dto"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
)

type CLIHandler struct {
	usecase playgroundin.Usecase
}

func NewCLIHandler(usecase playgroundin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Languages(ctx context.Context) ([]playgrounddto.LanguageOutput, error) {
	return h.usecase.Languages(ctx)
}

func (h CLIHandler) Run(ctx context.Context, language, source string) (string, error) {
	return h.usecase.Execute(ctx, language, source)
}

// SaveCode stores source as the saved code for language.
func (h CLIHandler) SaveCode(ctx context.Context, language, source string) (playgrounddto.SavedCodeOutput, error) {
	if _, err := h.usecase.Select(ctx, language); err != nil {
		return playgrounddto.SavedCodeOutput{}, err
	}
	defer h.usecase.Leave(ctx)
	if _, err := h.usecase.Edit(ctx, source); err != nil {
		return playgrounddto.SavedCodeOutput{}, err
	}
	return h.usecase.Save(ctx)
}

func (h CLIHandler) SavedCode(ctx context.Context) ([]playgrounddto.SavedCodeOutput, error) {
	return h.usecase.Saved(ctx)
}

func (h CLIHandler) Challenges(ctx context.Context, language string) ([]playgrounddto.ChallengeOutput, error) {
	return h.usecase.Challenges(ctx, language)
}

func (h CLIHandler) Ask(ctx context.Context, question string) ([]playgrounddto.AssistantMessage, error) {
	return h.usecase.AskAssistant(ctx, question)
}
