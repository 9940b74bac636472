package in

import (
	"context"

	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	navigationin "syntaxlabs/internal/modules/navigation/port/in"
)

type CLIHandler struct {
	usecase navigationin.Usecase
}

func NewCLIHandler(usecase navigationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Open starts navigation and renders tab id, or the default tab when id is
// empty.
func (h CLIHandler) Open(ctx context.Context, id string) (navigationdto.State, error) {
	if _, err := h.usecase.Start(ctx); err != nil {
		return navigationdto.State{}, err
	}
	if id == "" {
		return h.usecase.State(), nil
	}
	if err := h.usecase.SwitchTab(ctx, id); err != nil {
		return navigationdto.State{}, err
	}
	return h.usecase.State(), nil
}

func (h CLIHandler) Tabs() []navigationdto.TabOutput {
	return h.usecase.Tabs()
}

func (h CLIHandler) Theme(ctx context.Context) (navigationdto.State, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (navigationdto.State, error) {
	if _, err := h.usecase.Start(ctx); err != nil {
		return navigationdto.State{}, err
	}
	return h.usecase.ToggleTheme(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) (navigationdto.State, error) {
	if _, err := h.usecase.Start(ctx); err != nil {
		return navigationdto.State{}, err
	}
	return h.usecase.SetTheme(ctx, theme)
}
