package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of a walkthrough card.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Label   lipgloss.Color
	Bracket lipgloss.Color
	Number  lipgloss.Color
	String  lipgloss.Color
	Code    lipgloss.Color
	Comment lipgloss.Color
	Muted   lipgloss.Color
	Mutates lipgloss.Color // "Mutates" badge
	Returns lipgloss.Color // "Returns New" badge
	Border  lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Title:   lipgloss.Color("#ff00ff"),
		Label:   lipgloss.Color("#00ffff"),
		Bracket: lipgloss.Color("#ffff00"),
		Number:  lipgloss.Color("#ffffff"),
		String:  lipgloss.Color("#00ff00"),
		Code:    lipgloss.Color("#ffffff"),
		Comment: lipgloss.Color("#666666"),
		Muted:   lipgloss.Color("#666666"),
		Mutates: lipgloss.Color("#ff8800"),
		Returns: lipgloss.Color("#00ff00"),
		Border:  lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#00ff00"),
		Label:   lipgloss.Color("#00cc00"),
		Bracket: lipgloss.Color("#88ff88"),
		Number:  lipgloss.Color("#00ff00"),
		String:  lipgloss.Color("#88ff88"),
		Code:    lipgloss.Color("#00ff00"),
		Comment: lipgloss.Color("#005500"),
		Muted:   lipgloss.Color("#005500"),
		Mutates: lipgloss.Color("#ffff00"),
		Returns: lipgloss.Color("#88ff88"),
		Border:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Label:   lipgloss.Color("#cccccc"),
		Bracket: lipgloss.Color("#888888"),
		Number:  lipgloss.Color("#ffffff"),
		String:  lipgloss.Color("#0088ff"),
		Code:    lipgloss.Color("#ffffff"),
		Comment: lipgloss.Color("#888888"),
		Muted:   lipgloss.Color("#888888"),
		Mutates: lipgloss.Color("#ffaa00"),
		Returns: lipgloss.Color("#00ff00"),
		Border:  lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#0077be"),
		Label:   lipgloss.Color("#00a8cc"),
		Bracket: lipgloss.Color("#ffd700"),
		Number:  lipgloss.Color("#e0f0ff"),
		String:  lipgloss.Color("#00ff88"),
		Code:    lipgloss.Color("#e0f0ff"),
		Comment: lipgloss.Color("#4488aa"),
		Muted:   lipgloss.Color("#4488aa"),
		Mutates: lipgloss.Color("#ffcc00"),
		Returns: lipgloss.Color("#00ff88"),
		Border:  lipgloss.Color("#1f4e79"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Title:   lipgloss.Color("#ff6b6b"),
		Label:   lipgloss.Color("#feca57"),
		Bracket: lipgloss.Color("#ff9ff3"),
		Number:  lipgloss.Color("#fff5f5"),
		String:  lipgloss.Color("#5fd068"),
		Code:    lipgloss.Color("#fff5f5"),
		Comment: lipgloss.Color("#8b6b8c"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Mutates: lipgloss.Color("#ffc048"),
		Returns: lipgloss.Color("#5fd068"),
		Border:  lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeCyberpunk
}

// LookupTheme reports whether a theme with the given name exists.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
