package dto

import (
	"time"

	"syntaxlabs/internal/modules/navigation/domain"
	playgrounddto "syntaxlabs/internal/modules/playground/dto"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	sessiondto "syntaxlabs/internal/modules/session/dto"
)

type State struct {
	Tab   string
	Theme string
}

type TabOutput struct {
	ID     string
	Title  string
	Active bool
}

type Banner struct {
	Kind      string
	Message   string
	ExpiresAt time.Time
}

// ViewModel is everything a renderer needs to draw one tab. Exactly one
// section besides the header fields is set.
type ViewModel struct {
	Tab     string                    `yaml:"tab"`
	Title   string                    `yaml:"title"`
	Theme   string                    `yaml:"theme"`
	Palette domain.Palette            `yaml:"-"`
	User    *sessiondto.SessionOutput `yaml:"user,omitempty"`

	Placeholder *Placeholder            `yaml:"placeholder,omitempty"`
	Landing     *Landing                `yaml:"landing,omitempty"`
	Learning    *Learning               `yaml:"learning,omitempty"`
	Ranking     []progressdto.RankEntry `yaml:"ranking,omitempty"`
	Programming *Programming            `yaml:"programming,omitempty"`
	Reports     *Reports                `yaml:"reports,omitempty"`
	Profile     *Profile                `yaml:"profile,omitempty"`
	About       *About                  `yaml:"about,omitempty"`
}

// Placeholder replaces a tab that needs a logged-in user.
type Placeholder struct {
	Heading string `yaml:"heading"`
	Message string `yaml:"message"`
}

type Landing struct {
	Snippets []string `yaml:"snippets"`
	Color    string   `yaml:"color"`
}

type Learning struct {
	Overview progressdto.OverviewOutput `yaml:"overview"`
	Snapshot progressdto.SnapshotOutput `yaml:"snapshot"`
}

type Programming struct {
	Languages []playgrounddto.LanguageOutput  `yaml:"languages"`
	Editor    playgrounddto.EditorOutput      `yaml:"editor"`
	Console   []playgrounddto.ConsoleEntry    `yaml:"console,omitempty"`
	Saved     []playgrounddto.SavedCodeOutput `yaml:"saved,omitempty"`
}

type Reports struct {
	Snapshot progressdto.SnapshotOutput `yaml:"snapshot"`
}

type Profile struct {
	Overview progressdto.OverviewOutput `yaml:"overview"`
	Settings progressdto.SettingsOutput `yaml:"settings"`
	JoinedAt time.Time                  `yaml:"joined_at"`
}

type About struct {
	Lines []string `yaml:"lines"`
}
