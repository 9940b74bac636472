package in

import (
	"context"

	"syntaxlabs/internal/modules/playground/dto"
)

type Usecase interface {
	Languages(ctx context.Context) ([]dto.LanguageOutput, error)
	Select(ctx context.Context, language string) (dto.EditorOutput, error)
	Edit(ctx context.Context, source string) (dto.EditorOutput, error)
	Editor(ctx context.Context) dto.EditorOutput
	// Run executes the editor buffer and logs the outcome to the console.
	Run(ctx context.Context) (dto.RunOutput, error)
	// Execute dispatches source for language without touching editor state.
	Execute(ctx context.Context, language, source string) (string, error)
	Save(ctx context.Context) (dto.SavedCodeOutput, error)
	Saved(ctx context.Context) ([]dto.SavedCodeOutput, error)
	Clear(ctx context.Context) (dto.EditorOutput, error)
	ClearConsole(ctx context.Context)
	Console(ctx context.Context) []dto.ConsoleEntry
	Leave(ctx context.Context)
	Challenges(ctx context.Context, language string) ([]dto.ChallengeOutput, error)
	LoadChallenge(ctx context.Context, id string) (dto.EditorOutput, error)
	AskAssistant(ctx context.Context, question string) ([]dto.AssistantMessage, error)
	AnalyzeWithAssistant(ctx context.Context) (dto.AssistantMessage, error)
	Conversation(ctx context.Context) []dto.AssistantMessage
}
