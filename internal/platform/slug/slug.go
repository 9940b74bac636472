package slug

import (
	"regexp"
	"strings"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
	symbols     = strings.NewReplacer("++", "plusplus", "+", "plus", "#", "sharp", ".js", "js")
)

// Make turns a label such as a language name into a file-name safe slug.
// Symbols that carry meaning in language names are spelled out first so
// that "C++" and "C" do not collide.
func Make(input string) string {
	s := symbols.Replace(strings.ToLower(strings.TrimSpace(input)))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}
