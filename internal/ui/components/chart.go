package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	progressdto "syntaxlabs/internal/modules/progress/dto"
	"syntaxlabs/internal/ui/theme"
)

var weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// LanguageBars draws one horizontal bar per language, colored by series.
func LanguageBars(styles theme.Styles, langs []progressdto.LanguageProgress, width int) string {
	if len(langs) == 0 {
		return styles.Muted.Render("No language progress yet.")
	}
	labelW := 0
	for _, l := range langs {
		labelW = max(labelW, lipgloss.Width(l.Name))
	}
	barW := max(width-labelW-8, 10)
	var sb strings.Builder
	for i, l := range langs {
		filled := min(max(l.Percent, 0), 100) * barW / 100
		bar := styles.Series(i).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Palette.Grid)).Render(strings.Repeat("░", barW-filled))
		fmt.Fprintf(&sb, "%-*s %s %3d%%\n", labelW, l.Name, bar, l.Percent)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ActivityColumns draws the weekly study minutes as vertical columns.
func ActivityColumns(styles theme.Styles, minutes [7]int, height int) string {
	height = max(height, 3)
	top := 1
	for _, v := range minutes {
		top = max(top, v)
	}
	cols := make([]string, 0, len(minutes))
	for i, v := range minutes {
		filled := v * height / top
		var cell []string
		for row := height; row > 0; row-- {
			if row <= filled {
				cell = append(cell, styles.Series(0).Render(" ██ "))
			} else {
				cell = append(cell, "    ")
			}
		}
		cell = append(cell, styles.Muted.Render(fmt.Sprintf("%4s", weekdays[i])))
		cell = append(cell, styles.Muted.Render(fmt.Sprintf("%4d", v)))
		cols = append(cols, strings.Join(cell, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}
