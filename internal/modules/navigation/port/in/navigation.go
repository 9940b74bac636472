package in

import (
	"context"

	"syntaxlabs/internal/modules/navigation/dto"
)

type Usecase interface {
	// Start restores the theme and renders the default tab.
	Start(ctx context.Context) (dto.State, error)
	// SwitchTab renders tab id. Unknown ids are logged and reported as
	// ErrUnknownTab without touching state or the renderer.
	SwitchTab(ctx context.Context, id string) error
	ToggleTheme(ctx context.Context) (dto.State, error)
	SetTheme(ctx context.Context, theme string) (dto.State, error)
	// Refresh re-runs the active tab, e.g. after login or import.
	Refresh(ctx context.Context) error
	Notify(kind, message string) dto.Banner
	Banner() (dto.Banner, bool)
	DismissBanner()
	State() dto.State
	Tabs() []dto.TabOutput
}
