package out_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	navigationout "syntaxlabs/internal/modules/navigation/adapter/out"
	"syntaxlabs/internal/modules/navigation/domain"
	navigationdto "syntaxlabs/internal/modules/navigation/dto"
	"syntaxlabs/internal/platform/kvstore"
)

func TestThemeStoreDefaultsToDark(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	store := navigationout.NewKVThemeStore(kv)
	theme, err := store.LoadTheme(ctx)
	if err != nil || theme != domain.ThemeDark {
		t.Fatalf("expected dark default, got %q, %v", theme, err)
	}
	if err := store.SaveTheme(ctx, domain.ThemeLight); err != nil {
		t.Fatalf("save theme: %v", err)
	}
	raw, _, _ := kv.Get(ctx, kvstore.KeyTheme)
	if raw != "light" {
		t.Fatalf("theme must be stored as a plain string, got %q", raw)
	}
}

func TestYAMLRenderer(t *testing.T) {
	t.Parallel()
	buf := bytes.Buffer{}
	r := navigationout.NewYAMLRenderer(&buf)
	view := navigationdto.ViewModel{
		Tab:         "perfil",
		Title:       "Profile",
		Theme:       "dark",
		Placeholder: &navigationdto.Placeholder{Heading: "Access your profile", Message: "Log in."},
	}
	if err := r.Render(context.Background(), view); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"tab: perfil", "heading: Access your profile"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "landing") {
		t.Fatalf("empty sections must be omitted:\n%s", out)
	}
}
