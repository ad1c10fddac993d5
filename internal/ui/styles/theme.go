package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-recycle/internal/config"
)

// Theme defines the color palette for output
type Theme struct {
	Accent  color.Color // branch names
	Success color.Color // created branches
	Warning color.Color // nothing to do
	Danger  color.Color // removed branches
	Muted   color.Color // hashes, hints
}

var (
	// DefaultTheme mirrors classic terminal colors
	DefaultTheme = Theme{
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Warning: lipgloss.Color("214"), // orange
		Danger:  lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Formatting (bold/italic) is preserved
	NoneTheme = Theme{
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Danger:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

var themes = map[string]Theme{
	config.ThemeDefault: DefaultTheme,
	config.ThemeNone:    NoneTheme,
}

var currentTheme = DefaultTheme

// Current returns the active theme
func Current() Theme {
	return currentTheme
}

// Init activates the named theme. Unknown or empty names use the default.
func Init(name string) {
	theme, ok := themes[name]
	if !ok {
		theme = DefaultTheme
	}
	currentTheme = theme
	applyTheme(theme)
}

func applyTheme(t Theme) {
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	DangerStyle = lipgloss.NewStyle().Foreground(t.Danger)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
}
