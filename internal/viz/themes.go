package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the bar chart and panels.
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Panel   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Sorted  lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeDark = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("#4682b4"), // steel blue
		Panel:   lipgloss.Color("#282828"),
		Text:    lipgloss.Color("#dcdcdc"),
		Muted:   lipgloss.Color("#666666"),
		Bar:     lipgloss.Color("#787878"),
		Compare: lipgloss.Color("#ffc107"), // amber
		Sorted:  lipgloss.Color("#28a745"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeLavender = Theme{
		Name:    "lavender",
		Accent:  lipgloss.Color("#800080"), // purple
		Panel:   lipgloss.Color("#e6c8ff"),
		Text:    lipgloss.Color("#f5eaff"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Bar:     lipgloss.Color("#b48ad6"),
		Compare: lipgloss.Color("#ff9ff3"),
		Sorted:  lipgloss.Color("#800080"),
		Error:   lipgloss.Color("#ff4757"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Accent:  lipgloss.Color("#00ff00"), // green phosphor
		Panel:   lipgloss.Color("#001100"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Bar:     lipgloss.Color("#00aa00"),
		Compare: lipgloss.Color("#ffff00"),
		Sorted:  lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Accent:  lipgloss.Color("#0088ff"),
		Panel:   lipgloss.Color("#000000"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Bar:     lipgloss.Color("#cccccc"),
		Compare: lipgloss.Color("#ffaa00"),
		Sorted:  lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	// All available themes
	Themes = []Theme{
		ThemeDark,
		ThemeLavender,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// NextTheme returns the theme after name in the cycle.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDark
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
