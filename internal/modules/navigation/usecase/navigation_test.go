package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	navigationout "syntaxlabs/internal/modules/navigation/adapter/out"
	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	navigationin "syntaxlabs/internal/modules/navigation/port/in"
	"syntaxlabs/internal/modules/navigation/usecase"
	playgrounddto "syntaxlabs/internal/modules/playground/dto"
	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	progressdto "syntaxlabs/internal/modules/progress/dto"
	progressin "syntaxlabs/internal/modules/progress/port/in"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
)

type clockStub struct{ now time.Time }

func (c *clockStub) Now() time.Time { return c.now }

type fakeSession struct {
	sessionin.Usecase
	user *sessiondto.SessionOutput
}

func (f *fakeSession) Current(context.Context) (sessiondto.SessionOutput, error) {
	if f.user == nil {
		return sessiondto.SessionOutput{}, apperrors.ErrNoSession
	}
	return *f.user, nil
}

type fakeProgress struct {
	progressin.Usecase
}

func (fakeProgress) Get(context.Context) (progressdto.SnapshotOutput, error) {
	return progressdto.SnapshotOutput{LinesOfCode: 1250}, nil
}
func (fakeProgress) Overview(context.Context) (progressdto.OverviewOutput, error) {
	return progressdto.OverviewOutput{Name: "Ana", Level: 5}, nil
}
func (fakeProgress) Ranking(context.Context) ([]progressdto.RankEntry, error) {
	return []progressdto.RankEntry{{Position: 1, Name: "Top"}}, nil
}
func (fakeProgress) Settings(context.Context) (progressdto.SettingsOutput, error) {
	return progressdto.SettingsOutput{DarkMode: true}, nil
}

type fakePlayground struct {
	playgroundin.Usecase
	left int
}

func (f *fakePlayground) Languages(context.Context) ([]playgrounddto.LanguageOutput, error) {
	return []playgrounddto.LanguageOutput{{Name: "JavaScript"}}, nil
}
func (f *fakePlayground) Saved(context.Context) ([]playgrounddto.SavedCodeOutput, error) {
	return nil, nil
}
func (f *fakePlayground) Editor(context.Context) playgrounddto.EditorOutput {
	return playgrounddto.EditorOutput{}
}
func (f *fakePlayground) Console(context.Context) []playgrounddto.ConsoleEntry { return nil }
func (f *fakePlayground) Leave(context.Context) { f.left++ }

type recordingRenderer struct {
	views []navigationdto.ViewModel
	err   error
}

func (r *recordingRenderer) Render(_ context.Context, view navigationdto.ViewModel) error {
	r.views = append(r.views, view)
	return r.err
}

type harness struct {
	nav        navigationin.Usecase
	kv         *kvstore.MemoryStore
	session    *fakeSession
	playground *fakePlayground
	renderer   *recordingRenderer
	clock      *clockStub
}

func newHarness(t *testing.T) harness {
	t.Helper()
	h := harness{
		kv:         kvstore.NewMemoryStore(),
		session:    &fakeSession{},
		playground: &fakePlayground{},
		renderer:   &recordingRenderer{},
		clock:      &clockStub{now: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)},
	}
	h.nav = usecase.NewController(usecase.Deps{
		Session:    h.session,
		Progress:   fakeProgress{},
		Playground: h.playground,
		Renderer:   h.renderer,
		Themes:     navigationout.NewKVThemeStore(h.kv),
		Clock:      h.clock,
		BannerTTL:  5 * time.Second,
		Intn:       func(int) int { return 0 },
		Log:        logger.Nop(),
	})
	if _, err := h.nav.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return h
}

func TestStartRendersHomeWithStoredTheme(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	if err := kv.Set(ctx, kvstore.KeyTheme, "light"); err != nil {
		t.Fatalf("seed theme: %v", err)
	}
	renderer := &recordingRenderer{}
	nav := usecase.NewController(usecase.Deps{
		Session:    &fakeSession{},
		Progress:   fakeProgress{},
		Playground: &fakePlayground{},
		Renderer:   renderer,
		Themes:     navigationout.NewKVThemeStore(kv),
		Clock:      &clockStub{},
		BannerTTL:  time.Second,
		Intn:       func(int) int { return 0 },
	})
	state, err := nav.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if diff := cmp.Diff(navigationdto.State{Tab: "inicio", Theme: "light"}, state); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if len(renderer.views) != 1 || renderer.views[0].Landing == nil || len(renderer.views[0].Landing.Snippets) != 12 {
		t.Fatalf("expected landing view, got %+v", renderer.views)
	}
}

func TestSwitchTabUnknownIDChangesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	if err := h.nav.SwitchTab(ctx, "ranking"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	rendered := len(h.renderer.views)
	for _, id := range []string{"", "settings", "RANKING", "programacao "} {
		if err := h.nav.SwitchTab(ctx, id); !errors.Is(err, apperrors.ErrUnknownTab) {
			t.Fatalf("SwitchTab(%q) = %v, want ErrUnknownTab", id, err)
		}
	}
	if h.nav.State().Tab != "ranking" {
		t.Fatalf("active tab changed to %q", h.nav.State().Tab)
	}
	if len(h.renderer.views) != rendered {
		t.Fatalf("renderer called for unknown tabs")
	}
}

func TestSessionTabsShowPlaceholderWhenLoggedOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	for _, id := range []string{"aprendizados", "relatorios", "perfil"} {
		if err := h.nav.SwitchTab(ctx, id); err != nil {
			t.Fatalf("switch %s: %v", id, err)
		}
		last := h.renderer.views[len(h.renderer.views)-1]
		if last.Placeholder == nil || last.Learning != nil || last.Reports != nil || last.Profile != nil {
			t.Fatalf("%s should render a placeholder, got %+v", id, last)
		}
	}
	for _, id := range []string{"ranking", "programacao", "sobre", "inicio"} {
		if err := h.nav.SwitchTab(ctx, id); err != nil {
			t.Fatalf("switch %s: %v", id, err)
		}
		if last := h.renderer.views[len(h.renderer.views)-1]; last.Placeholder != nil {
			t.Fatalf("%s must render without a session", id)
		}
	}
}

func TestSessionTabsRenderWhenLoggedIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	h.session.user = &sessiondto.SessionOutput{ID: 1777896000000, Name: "Ana"}
	if err := h.nav.SwitchTab(ctx, "perfil"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	last := h.renderer.views[len(h.renderer.views)-1]
	if last.Profile == nil || last.User == nil || last.Profile.JoinedAt.Year() != 2026 {
		t.Fatalf("unexpected profile view %+v", last)
	}
	if err := h.nav.SwitchTab(ctx, "aprendizados"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if last := h.renderer.views[len(h.renderer.views)-1]; last.Learning == nil || last.Learning.Snapshot.LinesOfCode != 1250 {
		t.Fatalf("unexpected learning view %+v", last)
	}
}

func TestLeavingProgrammingResetsEditor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	if err := h.nav.SwitchTab(ctx, "programacao"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if err := h.nav.SwitchTab(ctx, "programacao"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if h.playground.left != 0 {
		t.Fatalf("re-entering the same tab must not reset the editor")
	}
	if err := h.nav.SwitchTab(ctx, "sobre"); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if h.playground.left != 1 {
		t.Fatalf("expected one editor reset, got %d", h.playground.left)
	}
}

func TestToggleThemeTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := newHarness(t)
	first, err := h.nav.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if first.Theme != "light" {
		t.Fatalf("expected light, got %s", first.Theme)
	}
	second, err := h.nav.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if second.Theme != "dark" {
		t.Fatalf("expected dark, got %s", second.Theme)
	}
	raw, _, _ := h.kv.Get(ctx, kvstore.KeyTheme)
	if raw != "dark" {
		t.Fatalf("store should hold the final theme, got %q", raw)
	}
	if h.kv.Writes[kvstore.KeyTheme] != 2 {
		t.Fatalf("expected exactly two theme writes, got %d", h.kv.Writes[kvstore.KeyTheme])
	}
	last := h.renderer.views[len(h.renderer.views)-1]
	if last.Theme != "dark" || last.Landing == nil || last.Landing.Color != last.Palette.Snippet {
		t.Fatalf("re-render should use the new palette: %+v", last)
	}
}

func TestSetThemeValidates(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	if _, err := h.nav.SetTheme(context.Background(), "blue"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected validation error, got %v", err)
	}
	state, err := h.nav.SetTheme(context.Background(), "light")
	if err != nil || state.Theme != "light" {
		t.Fatalf("set theme: %+v %v", state, err)
	}
}

func TestMissingViewIsNotFatal(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.renderer.err = apperrors.ErrMissingView
	if err := h.nav.SwitchTab(context.Background(), "ranking"); err != nil {
		t.Fatalf("missing view must be swallowed, got %v", err)
	}
	if h.nav.State().Tab != "ranking" {
		t.Fatalf("tab should still switch")
	}
	h.renderer.err = errors.New("boom")
	if err := h.nav.Refresh(context.Background()); err == nil {
		t.Fatalf("other renderer errors propagate")
	}
}

func TestBannerExpires(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	b := h.nav.Notify("success", "Welcome back, Ana!")
	if b.Kind != "success" || !b.ExpiresAt.Equal(h.clock.now.Add(5*time.Second)) {
		t.Fatalf("unexpected banner %+v", b)
	}
	if _, ok := h.nav.Banner(); !ok {
		t.Fatalf("banner should be live")
	}
	h.clock.now = h.clock.now.Add(5 * time.Second)
	if _, ok := h.nav.Banner(); ok {
		t.Fatalf("banner should have expired")
	}
	h.nav.Notify("bogus", "x")
	h.nav.DismissBanner()
	if _, ok := h.nav.Banner(); ok {
		t.Fatalf("dismissed banner must be gone")
	}
}

func TestTabsMarksActive(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	tabs := h.nav.Tabs()
	if len(tabs) != 7 || !tabs[0].Active || tabs[0].ID != "inicio" {
		t.Fatalf("unexpected tabs %+v", tabs)
	}
}
