package dto

import "time"

type LanguageOutput struct {
	Name        string
	Slug        string
	Description string
	Extension   string
	Premium     bool
	// Locked is set for premium languages while nobody is logged in.
	Locked      bool
}

type EditorOutput struct {
	Language string
	Source   string
	Dirty    bool
}

type ConsoleEntry struct {
	Kind    string
	Message string
	At      time.Time
}

type RunOutput struct {
	Language string
	Result   string
	Console  []ConsoleEntry
}

type SavedCodeOutput struct {
	Language  string
	Code      string
	Timestamp string
}

type ChallengeOutput struct {
	ID          string
	Language    string
	Title       string
	Description string
	Difficulty  string
	Points      int
}

type AssistantMessage struct {
	ID     string
	Sender string
	Text   string
	At     time.Time
}
