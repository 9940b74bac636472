package out

import (
	"context"

	"syntaxlabs/internal/modules/navigation/domain"
	"syntaxlabs/internal/modules/navigation/dto"
)

// Renderer draws view models. It returns apperrors.ErrMissingView when it
// has nothing to draw a tab with.
type Renderer interface {
	Render(ctx context.Context, view dto.ViewModel) error
}

type ThemeStore interface {
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
