package domain

import (
	"testing"
	"time"
)

func TestParseTab(t *testing.T) {
	t.Parallel()
	for _, tab := range Tabs() {
		got, ok := ParseTab(string(tab))
		if !ok || got != tab {
			t.Fatalf("ParseTab(%q) = %q, %v", tab, got, ok)
		}
		if tab.Title() == "" {
			t.Fatalf("tab %q has no title", tab)
		}
	}
	for _, bad := range []string{"", "Inicio", "settings", " perfil"} {
		if _, ok := ParseTab(bad); ok {
			t.Fatalf("ParseTab(%q) should fail", bad)
		}
	}
}

func TestNeedsSession(t *testing.T) {
	t.Parallel()
	want := map[TabID]bool{TabProgress: true, TabReports: true, TabProfile: true}
	for _, tab := range Tabs() {
		if tab.NeedsSession() != want[tab] {
			t.Fatalf("NeedsSession(%q) = %v", tab, tab.NeedsSession())
		}
	}
}

func TestThemeToggleAndPalette(t *testing.T) {
	t.Parallel()
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle().Toggle() != ThemeLight {
		t.Fatalf("toggle is not an involution")
	}
	if ParseTheme("garbage") != ThemeDark || ParseTheme("light") != ThemeLight {
		t.Fatalf("unexpected ParseTheme fallback")
	}
	if ThemeDark.Palette().Text == ThemeLight.Palette().Text {
		t.Fatalf("palettes should differ by theme")
	}
}

func TestBannerExpiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Banner{Kind: BannerInfo, ExpiresAt: now.Add(5 * time.Second)}
	if b.Expired(now.Add(4 * time.Second)) {
		t.Fatalf("banner expired early")
	}
	if !b.Expired(now.Add(5 * time.Second)) {
		t.Fatalf("banner should expire at its deadline")
	}
	if ParseBannerKind("nope") != BannerInfo {
		t.Fatalf("unknown kinds default to info")
	}
}

func TestLandingSnippets(t *testing.T) {
	t.Parallel()
	got := LandingSnippets(func(n int) int { return n - 1 })
	if len(got) != LandingLines || got[0] != "node syntax.js" {
		t.Fatalf("unexpected snippets %v", got)
	}
}
