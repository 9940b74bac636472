package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type Kind string

const (
	KindProgress Kind = "progress"
	KindCode     Kind = "code"
)

// Meta is the frontmatter of a generated report.
type Meta struct {
	Kind        Kind   `yaml:"kind"`
	Title       string `yaml:"title"`
	Language    string `yaml:"language,omitempty"`
	GeneratedAt string `yaml:"generated_at"`
}

type Document struct {
	Meta        Meta
	GeneratedAt time.Time
	Content     string
}

// ComplexityLabel buckets a 0-100 challenge complexity score.
func ComplexityLabel(score int) string {
	switch {
	case score >= 70:
		return "Advanced"
	case score >= 40:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

var whitespace = regexp.MustCompile(`\s+`)

type CodeMetrics struct {
	Lines        int
	Words        int
	Characters   int
	Complexity   string
	HasComments  bool
	HasFunctions bool
	HasLoops     bool
}

// AnalyzeCode runs substring heuristics over source; nothing is tokenized.
// Words are whitespace-separated runs, so leading or trailing whitespace
// counts as an empty word.
func AnalyzeCode(source string) CodeMetrics {
	m := CodeMetrics{
		Lines:        len(strings.Split(source, "\n")),
		Words:        len(whitespace.Split(source, -1)),
		Characters:   utf8.RuneCountInString(source),
		HasComments:  containsAny(source, "//", "/*", "#"),
		HasFunctions: containsAny(source, "function", "def ", "void"),
		HasLoops:     containsAny(source, "for", "while", "forEach"),
	}
	switch {
	case m.Lines > 50:
		m.Complexity = "High"
	case m.Lines > 20:
		m.Complexity = "Medium"
	default:
		m.Complexity = "Low"
	}
	return m
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
