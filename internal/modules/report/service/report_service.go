package service

import (
	"fmt"
	"strings"
	"time"

	progressdto "syntaxlabs/internal/modules/progress/dto"
	"syntaxlabs/internal/modules/report/domain"
	"syntaxlabs/internal/platform/markdown"
)

const dateLayout = "2006-01-02"

// ReportService assembles report documents from templates. It keeps no state.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

func (s *ReportService) Progress(p progressdto.SnapshotOutput, at time.Time) (domain.Document, error) {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# Progress Report - Syntax Labs\n\nGenerated on %s\n\n", at.Format(dateLayout))

	b.WriteString("## General Statistics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Lines of code | %d |\n", p.LinesOfCode)
	fmt.Fprintf(&b, "| Challenges completed | %d |\n", p.ChallengesCompleted)
	fmt.Fprintf(&b, "| Study time | %dh |\n", p.StudyTimeHours)
	fmt.Fprintf(&b, "| Current level | Level %d |\n\n", p.Level)

	b.WriteString("## Progress by Language\n\n")
	if len(p.Languages) == 0 {
		b.WriteString("No language progress yet.\n\n")
	}
	for _, l := range p.Languages {
		fmt.Fprintf(&b, "- **%s** %s %d%%\n", l.Name, bar(l.Percent), l.Percent)
	}
	if len(p.Languages) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("## Challenge Performance\n\n")
	fmt.Fprintf(&b, "- Success rate: %d%%\n", p.SuccessRate)
	fmt.Fprintf(&b, "- Average time: %dmin\n", p.AverageTimeMinutes)
	fmt.Fprintf(&b, "- Complexity level: %s\n\n", domain.ComplexityLabel(p.Complexity))

	b.WriteString("## Recommendations\n\n")
	b.WriteString("- Focus on practicing Python to raise your current 70% progress\n")
	b.WriteString("- Study at least 45 minutes a day for better consistency\n")
	b.WriteString("- Start a hands-on project to apply what you know\n\n")
	b.WriteString("---\n\n**Syntax Labs** - Turning developers into experts\n")

	return render(domain.Meta{Kind: domain.KindProgress, Title: "Progress Report - Syntax Labs"}, at, b.String())
}

func (s *ReportService) Code(language, source string, at time.Time) (domain.Document, error) {
	m := domain.AnalyzeCode(source)
	b := strings.Builder{}
	fmt.Fprintf(&b, "# Code Analysis Report\n\nLanguage: %s | Generated on %s\n\n", language, at.Format(dateLayout))

	b.WriteString("## Code Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Lines of code | %d |\n", m.Lines)
	fmt.Fprintf(&b, "| Words | %d |\n", m.Words)
	fmt.Fprintf(&b, "| Characters | %d |\n", m.Characters)
	fmt.Fprintf(&b, "| Complexity | %s |\n\n", m.Complexity)

	b.WriteString("## Structural Analysis\n\n")
	b.WriteString(check(m.HasComments, "Has comments", "Add comments"))
	b.WriteString(check(m.HasFunctions, "Uses functions/methods", "Consider using functions"))
	b.WriteString(check(m.HasLoops, "Uses loops", "Loops could handle repetition"))
	b.WriteString("\n")

	b.WriteString("## Improvement Suggestions\n\n")
	b.WriteString("- Add more comments to explain complex logic\n")
	b.WriteString("- Consider splitting the code into smaller, focused functions\n")
	b.WriteString("- Handle errors to make the code more robust\n\n")

	b.WriteString("## Next Steps\n\n")
	b.WriteString("- Test the code with different inputs\n")
	b.WriteString("- Look for and fix possible bugs\n")
	b.WriteString("- Expand the feature set with new capabilities\n")

	meta := domain.Meta{Kind: domain.KindCode, Title: "Code Analysis Report - " + language, Language: language}
	return render(meta, at, b.String())
}

func render(meta domain.Meta, at time.Time, body string) (domain.Document, error) {
	meta.GeneratedAt = at.UTC().Format(time.RFC3339)
	content, err := markdown.Render(meta, body)
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{Meta: meta, GeneratedAt: at, Content: content}, nil
}

func check(ok bool, yes, no string) string {
	if ok {
		return "- [x] " + yes + "\n"
	}
	return "- [ ] " + no + "\n"
}

func bar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	return "`" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "`"
}
