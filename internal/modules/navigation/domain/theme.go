package domain

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme falls back to dark for anything but "light".
func ParseTheme(raw string) Theme {
	if raw == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Palette holds the themed colors of the landing animation and the charts.
type Palette struct {
	Background string
	Surface    string
	Primary    string
	Text       string
	Muted      string
	Grid       string
	Snippet    string
	Success    string
	Warning    string
	Error      string
	Series     []string
}

func (t Theme) Palette() Palette {
	series := []string{"#4A90E2", "#48BB78", "#ED8936", "#9F7AEA", "#F56565"}
	if t == ThemeLight {
		return Palette{
			Background: "#FFFFFF",
			Surface:    "#EDF2F7",
			Primary:    "#2B6CB0",
			Text:       "#2D3748",
			Muted:      "#718096",
			Grid:       "#E2E8F0",
			Snippet:    "#90B4E0",
			Success:    "#2F855A",
			Warning:    "#B7791F",
			Error:      "#C53030",
			Series:     series,
		}
	}
	return Palette{
		Background: "#1A1B26",
		Surface:    "#24283B",
		Primary:    "#4A90E2",
		Text:       "#FFFFFF",
		Muted:      "#A0AEC0",
		Grid:       "#2D3748",
		Snippet:    "#3A6EA8",
		Success:    "#48BB78",
		Warning:    "#ECC94B",
		Error:      "#F56565",
		Series:     series,
	}
}
