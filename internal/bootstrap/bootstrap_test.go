package bootstrap_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"syntaxlabs/internal/bootstrap"
	"syntaxlabs/internal/platform/clock"
	"syntaxlabs/internal/platform/config"
	"syntaxlabs/internal/platform/kvstore"
)

func newApp(t *testing.T, store kvstore.Store, recorder *bootstrap.ViewRecorder) *bootstrap.App {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.LogPath = filepath.Join(dir, "test.log")
	app, err := bootstrap.New(cfg, bootstrap.Options{Store: store, Renderer: recorder, Sleeper: clock.NoSleep{}})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestSessionSurvivesRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	first := newApp(t, store, &bootstrap.ViewRecorder{})
	if _, err := first.SessionCLI.Login(ctx, "student", "Ana", "ana@example.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second := newApp(t, store, &bootstrap.ViewRecorder{})
	user, err := second.SessionCLI.WhoAmI(ctx)
	if err != nil {
		t.Fatalf("whoami after restart: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestTabRendersThroughRecorder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	recorder := &bootstrap.ViewRecorder{}
	app := newApp(t, kvstore.NewMemoryStore(), recorder)

	state, err := app.NavigationCLI.Open(ctx, "perfil")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if state.Tab != "perfil" {
		t.Fatalf("unexpected state %+v", state)
	}
	var out bytes.Buffer
	if err := recorder.Flush(ctx, &out); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(out.String(), "tab: perfil") || !strings.Contains(out.String(), "placeholder:") {
		t.Fatalf("logged-out profile should render a placeholder:\n%s", out.String())
	}
}

func TestRunJavaScriptEndToEnd(t *testing.T) {
	t.Parallel()
	app := newApp(t, kvstore.NewMemoryStore(), &bootstrap.ViewRecorder{})
	result, err := app.PlaygroundCLI.Run(context.Background(), "JavaScript", "console.log([1, 2, 3].map(n => n * 2).join(','))")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result != "2,4,6" {
		t.Fatalf("unexpected result %q", result)
	}
}
