package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"syntaxlabs/internal/modules/navigation/domain"
	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	navigationin "syntaxlabs/internal/modules/navigation/port/in"
	navigationout "syntaxlabs/internal/modules/navigation/port/out"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	progressin "syntaxlabs/internal/modules/progress/port/in"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	"syntaxlabs/internal/platform/clock"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/logger"
)

type Deps struct {
	Session    sessionin.Usecase
	Progress   progressin.Usecase
	Playground playgroundin.Usecase
	Renderer   navigationout.Renderer
	Themes     navigationout.ThemeStore
	Clock      clock.Clock
	BannerTTL  time.Duration
	Intn       func(n int) int
	Log        *logger.Logger
}

type entryFunc func(ctx context.Context, view *navigationdto.ViewModel, user *sessiondto.SessionOutput) error

// Controller owns the active tab and theme and turns tab entries into view
// models for the renderer.
type Controller struct {
	deps    Deps
	log     *logger.Logger
	entries map[domain.TabID]entryFunc

	mu     sync.Mutex
	state  domain.ViewState
	banner *domain.Banner
}

func NewController(deps Deps) navigationin.Usecase {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	c := &Controller{
		deps:  deps,
		log:   log.With("module", "navigation"),
		state: domain.ViewState{ActiveTab: domain.DefaultTab, Theme: domain.ThemeDark},
	}
	c.entries = map[domain.TabID]entryFunc{
		domain.TabHome:        c.enterHome,
		domain.TabProgress:    c.enterProgress,
		domain.TabRanking:     c.enterRanking,
		domain.TabProgramming: c.enterProgramming,
		domain.TabReports:     c.enterReports,
		domain.TabProfile:     c.enterProfile,
		domain.TabAbout:       c.enterAbout,
	}
	return c
}

func (c *Controller) Start(ctx context.Context) (navigationdto.State, error) {
	theme, err := c.deps.Themes.LoadTheme(ctx)
	if err != nil {
		return navigationdto.State{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = domain.ViewState{ActiveTab: domain.DefaultTab, Theme: theme}
	if err := c.renderLocked(ctx); err != nil {
		return navigationdto.State{}, err
	}
	return c.stateLocked(), nil
}

func (c *Controller) SwitchTab(ctx context.Context, id string) error {
	tab, ok := domain.ParseTab(id)
	if !ok {
		c.log.Warn("tab not found", "tab", id)
		return apperrors.ErrUnknownTab
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	previous := c.state.ActiveTab
	c.state.ActiveTab = tab
	if previous == domain.TabProgramming && tab != domain.TabProgramming {
		c.deps.Playground.Leave(ctx)
	}
	c.log.Debug("tab changed", "from", string(previous), "to", string(tab))
	return c.renderLocked(ctx)
}

func (c *Controller) ToggleTheme(ctx context.Context) (navigationdto.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyThemeLocked(ctx, c.state.Theme.Toggle())
}

func (c *Controller) SetTheme(ctx context.Context, theme string) (navigationdto.State, error) {
	if theme != string(domain.ThemeDark) && theme != string(domain.ThemeLight) {
		return navigationdto.State{}, apperrors.Validation("theme", "Theme must be dark or light.")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyThemeLocked(ctx, domain.Theme(theme))
}

func (c *Controller) applyThemeLocked(ctx context.Context, theme domain.Theme) (navigationdto.State, error) {
	if err := c.deps.Themes.SaveTheme(ctx, theme); err != nil {
		return navigationdto.State{}, err
	}
	c.state.Theme = theme
	c.log.Info("theme changed", "theme", string(theme))
	if err := c.renderLocked(ctx); err != nil {
		return navigationdto.State{}, err
	}
	return c.stateLocked(), nil
}

func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked(ctx)
}

func (c *Controller) Notify(kind, message string) navigationdto.Banner {
	b := domain.Banner{
		Kind:      domain.ParseBannerKind(kind),
		Message:   message,
		ExpiresAt: c.deps.Clock.Now().Add(c.deps.BannerTTL),
	}
	c.mu.Lock()
	c.banner = &b
	c.mu.Unlock()
	return toBanner(b)
}

// Banner returns the live banner, dropping it once expired.
func (c *Controller) Banner() (navigationdto.Banner, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.banner == nil {
		return navigationdto.Banner{}, false
	}
	if c.banner.Expired(c.deps.Clock.Now()) {
		c.banner = nil
		return navigationdto.Banner{}, false
	}
	return toBanner(*c.banner), true
}

func (c *Controller) DismissBanner() {
	c.mu.Lock()
	c.banner = nil
	c.mu.Unlock()
}

func (c *Controller) State() navigationdto.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) Tabs() []navigationdto.TabOutput {
	c.mu.Lock()
	active := c.state.ActiveTab
	c.mu.Unlock()
	out := []navigationdto.TabOutput{}
	for _, t := range domain.Tabs() {
		out = append(out, navigationdto.TabOutput{ID: string(t), Title: t.Title(), Active: t == active})
	}
	return out
}

func (c *Controller) stateLocked() navigationdto.State {
	return navigationdto.State{Tab: string(c.state.ActiveTab), Theme: string(c.state.Theme)}
}

func (c *Controller) renderLocked(ctx context.Context) error {
	tab := c.state.ActiveTab
	view := navigationdto.ViewModel{
		Tab:     string(tab),
		Title:   tab.Title(),
		Theme:   string(c.state.Theme),
		Palette: c.state.Theme.Palette(),
	}

	var user *sessiondto.SessionOutput
	current, err := c.deps.Session.Current(ctx)
	switch {
	case err == nil:
		user = &current
		view.User = user
	case !errors.Is(err, apperrors.ErrNoSession):
		return err
	}

	if tab.NeedsSession() && user == nil {
		view.Placeholder = placeholders[tab]
	} else if err := c.entries[tab](ctx, &view, user); err != nil {
		return err
	}

	if err := c.deps.Renderer.Render(ctx, view); err != nil {
		if errors.Is(err, apperrors.ErrMissingView) {
			c.log.Warn("view element missing", "tab", string(tab), "error", err)
			return nil
		}
		return err
	}
	return nil
}

var placeholders = map[domain.TabID]*navigationdto.Placeholder{
	domain.TabProgress: {
		Heading: "Log in to see your progress",
		Message: "Track your growth, achievements and recent activity.",
	},
	domain.TabReports: {
		Heading: "Access detailed reports",
		Message: "Log in to unlock full progress reports, performance analysis and personalised recommendations.",
	},
	domain.TabProfile: {
		Heading: "Access your profile",
		Message: "Log in to manage your personal information, preferences and account settings.",
	},
}

func (c *Controller) enterHome(_ context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	view.Landing = &navigationdto.Landing{
		Snippets: domain.LandingSnippets(c.deps.Intn),
		Color:    view.Palette.Snippet,
	}
	return nil
}

func (c *Controller) enterProgress(ctx context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	overview, err := c.deps.Progress.Overview(ctx)
	if err != nil {
		return err
	}
	snapshot, err := c.deps.Progress.Get(ctx)
	if err != nil {
		return err
	}
	view.Learning = &navigationdto.Learning{Overview: overview, Snapshot: snapshot}
	return nil
}

func (c *Controller) enterRanking(ctx context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	ranking, err := c.deps.Progress.Ranking(ctx)
	if err != nil {
		return err
	}
	view.Ranking = ranking
	return nil
}

func (c *Controller) enterProgramming(ctx context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	languages, err := c.deps.Playground.Languages(ctx)
	if err != nil {
		return err
	}
	saved, err := c.deps.Playground.Saved(ctx)
	if err != nil {
		return err
	}
	view.Programming = &navigationdto.Programming{
		Languages: languages,
		Editor:    c.deps.Playground.Editor(ctx),
		Console:   c.deps.Playground.Console(ctx),
		Saved:     saved,
	}
	return nil
}

func (c *Controller) enterReports(ctx context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	snapshot, err := c.deps.Progress.Get(ctx)
	if err != nil {
		return err
	}
	view.Reports = &navigationdto.Reports{Snapshot: snapshot}
	return nil
}

func (c *Controller) enterProfile(ctx context.Context, view *navigationdto.ViewModel, user *sessiondto.SessionOutput) error {
	overview, err := c.deps.Progress.Overview(ctx)
	if err != nil {
		return err
	}
	settings, err := c.deps.Progress.Settings(ctx)
	if err != nil {
		return err
	}
	view.Profile = &navigationdto.Profile{
		Overview: overview,
		Settings: settings,
		JoinedAt: time.UnixMilli(user.ID).UTC(),
	}
	return nil
}

func (c *Controller) enterAbout(_ context.Context, view *navigationdto.ViewModel, _ *sessiondto.SessionOutput) error {
	view.About = &navigationdto.About{Lines: []string{
		"Syntax Labs is a learning platform for programming languages.",
		"Practice in the playground, take challenges and follow your progress.",
		"Code runs locally: JavaScript is evaluated, other languages are simulated.",
	}}
	return nil
}

func toBanner(b domain.Banner) navigationdto.Banner {
	return navigationdto.Banner{Kind: string(b.Kind), Message: b.Message, ExpiresAt: b.ExpiresAt}
}
