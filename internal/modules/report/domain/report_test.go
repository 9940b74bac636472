package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComplexityLabel(t *testing.T) {
	t.Parallel()
	cases := map[int]string{0: "Beginner", 39: "Beginner", 40: "Intermediate", 69: "Intermediate", 70: "Advanced", 100: "Advanced"}
	for score, want := range cases {
		if got := ComplexityLabel(score); got != want {
			t.Fatalf("ComplexityLabel(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestAnalyzeCode(t *testing.T) {
	t.Parallel()
	src := "// greet\nfunction hi(name) {\n  for (const c of name) console.log(c)\n}"
	got := AnalyzeCode(src)
	want := CodeMetrics{
		Lines:        4,
		Words:        len(strings.Fields(src)),
		Characters:   len(src),
		Complexity:   "Low",
		HasComments:  true,
		HasFunctions: true,
		HasLoops:     true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("metrics mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeCodeComplexityBuckets(t *testing.T) {
	t.Parallel()
	if c := AnalyzeCode(strings.Repeat("x\n", 21)).Complexity; c != "Medium" {
		t.Fatalf("22 lines should be Medium, got %s", c)
	}
	if c := AnalyzeCode(strings.Repeat("x\n", 60)).Complexity; c != "High" {
		t.Fatalf("61 lines should be High, got %s", c)
	}
	plain := AnalyzeCode("x = 1")
	if plain.HasComments || plain.HasFunctions || plain.HasLoops {
		t.Fatalf("no heuristics should match: %+v", plain)
	}
}

func TestAnalyzeCodeCountsEdgeWhitespaceAsWord(t *testing.T) {
	t.Parallel()
	if w := AnalyzeCode(" a b ").Words; w != 4 {
		t.Fatalf("expected 4 words for padded input, got %d", w)
	}
}
