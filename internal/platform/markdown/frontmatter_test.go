package markdown_test

import (
	"strings"
	"testing"

	"syntaxlabs/internal/platform/markdown"
)

type meta struct {
	Kind     string `yaml:"kind"`
	Language string `yaml:"language,omitempty"`
}

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	doc, err := markdown.Render(meta{Kind: "code", Language: "Python"}, "# Title\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(doc, "---\nkind: code\nlanguage: Python\n---\n") {
		t.Fatalf("unexpected frontmatter: %q", doc)
	}
	var got meta
	body, err := markdown.Split(doc, &got)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got.Kind != "code" || got.Language != "Python" {
		t.Fatalf("unexpected meta %+v", got)
	}
	if body != "# Title\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSplitRejectsUnclosedBlock(t *testing.T) {
	t.Parallel()
	if _, err := markdown.Split("---\nkind: x\n", &meta{}); err == nil {
		t.Fatalf("expected error for missing closing separator")
	}
	if markdown.Body("plain") != "plain" {
		t.Fatalf("content without frontmatter must pass through")
	}
}
