package domain

import "testing"

func TestCatalogCoversEveryLanguage(t *testing.T) {
	t.Parallel()
	if len(All()) != 11 {
		t.Fatalf("expected eleven languages, got %d", len(All()))
	}
	for _, l := range All() {
		info := l.Info()
		if info.Name == "" || info.Extension == "" || info.StarterCode == "" {
			t.Fatalf("%d has incomplete catalog entry %+v", l, info)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()
	cases := map[string]Language{
		"JavaScript": JavaScript,
		"python":     Python,
		"C++":        CPlusPlus,
		"cplusplus":  CPlusPlus,
		"Node.js":    NodeJS,
		"nodejs":     NodeJS,
		" assembly ": Assembly,
	}
	for raw, want := range cases {
		got, err := ParseLanguage(raw)
		if err != nil || got != want {
			t.Fatalf("ParseLanguage(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseLanguage("Cobol"); err == nil {
		t.Fatalf("unknown language must fail")
	}
}

func TestPremiumSplit(t *testing.T) {
	t.Parallel()
	free := 0
	for _, l := range All() {
		if !l.Premium() {
			free++
		}
	}
	if free != 5 || !PHP.Premium() || Java.Premium() {
		t.Fatalf("expected five free languages ending at Java, got %d", free)
	}
}

func TestEditorBuffer(t *testing.T) {
	t.Parallel()
	b := &EditorBuffer{}
	b.Select(Lua)
	if b.Language == nil || *b.Language != Lua || b.Dirty {
		t.Fatalf("select must load a clean buffer: %+v", b)
	}
	b.Edit(b.Source)
	if b.Dirty {
		t.Fatalf("unchanged text must not dirty the buffer")
	}
	b.Edit("print(1)")
	if !b.Dirty {
		t.Fatalf("edit must mark dirty")
	}
	b.Reset()
	if b.Language != nil || b.Source != "" {
		t.Fatalf("reset must clear the buffer")
	}
}
