package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the calculator UI
type Theme struct {
	Name     string
	Display  lipgloss.Color // display digits
	Frame    lipgloss.Color // panel borders
	Button   lipgloss.Color // keypad labels
	Active   lipgloss.Color // highlighted keypad button
	Operator lipgloss.Color // operator column and pending row
	Muted    lipgloss.Color // hints and captions
	Error    lipgloss.Color
}

// Available themes
var (
	ThemeRetro = Theme{
		Name:     "retro",
		Display:  lipgloss.Color("#00ff00"), // Green phosphor
		Frame:    lipgloss.Color("#005500"),
		Button:   lipgloss.Color("#00cc00"),
		Active:   lipgloss.Color("#88ff88"),
		Operator: lipgloss.Color("#ffff00"),
		Muted:    lipgloss.Color("#005500"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeLCD = Theme{
		Name:     "lcd",
		Display:  lipgloss.Color("#222222"),
		Frame:    lipgloss.Color("#667755"),
		Button:   lipgloss.Color("#334433"),
		Active:   lipgloss.Color("#000000"),
		Operator: lipgloss.Color("#554400"),
		Muted:    lipgloss.Color("#889988"),
		Error:    lipgloss.Color("#aa2200"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Display:  lipgloss.Color("#00ffff"), // Cyan
		Frame:    lipgloss.Color("#444466"),
		Button:   lipgloss.Color("#ff00ff"), // Magenta
		Active:   lipgloss.Color("#ffff00"),
		Operator: lipgloss.Color("#ffff00"),
		Muted:    lipgloss.Color("#666688"),
		Error:    lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Display:  lipgloss.Color("#e0f0ff"),
		Frame:    lipgloss.Color("#0077be"), // Ocean blue
		Button:   lipgloss.Color("#00a8cc"),
		Active:   lipgloss.Color("#ffd700"),
		Operator: lipgloss.Color("#ffd700"),
		Muted:    lipgloss.Color("#4488aa"),
		Error:    lipgloss.Color("#ff4444"),
	}

	// All available themes
	Themes = []Theme{
		ThemeRetro,
		ThemeLCD,
		ThemeCyberpunk,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetro
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
