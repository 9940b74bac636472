package components

import (
	"github.com/charmbracelet/lipgloss"

	navdto "syntaxlabs/internal/modules/navigation/dto"
	"syntaxlabs/internal/ui/theme"
)

var bannerIcons = map[string]string{
	"info":    "ℹ",
	"success": "✔",
	"warning": "⚠",
	"error":   "✖",
}

func Banner(styles theme.Styles, b navdto.Banner, width int) string {
	style := styles.Muted
	switch b.Kind {
	case "success":
		style = styles.Success
	case "warning":
		style = styles.Warning
	case "error":
		style = styles.Error
	}
	line := style.Render(bannerIcons[b.Kind]+" "+b.Message) + styles.Muted.Render("  (any key to dismiss)")
	return lipgloss.NewStyle().Background(styles.Surface).Width(width).Render(line)
}

// Placeholder renders the login prompt shown by tabs that need a session.
func Placeholder(styles theme.Styles, p *navdto.Placeholder, width, height int) string {
	body := styles.Title.Render(p.Heading) + "\n\n" + p.Message + "\n\n" +
		styles.Muted.Render("press l to log in or u to create an account")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(min(width-4, 64)).Align(lipgloss.Center).Render(body))
}
