// Package styles provides shared lipgloss styles for git-recycle output.
//
// Styles are derived from the active [Theme]; call [Init] once at startup
// to switch themes.
package styles

import "charm.land/lipgloss/v2"

var (
	// AccentStyle highlights branch names
	AccentStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Accent).Bold(true)

	// SuccessStyle is used for created branches
	SuccessStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Success)

	// WarningStyle is used when there is nothing to do
	WarningStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Warning)

	// DangerStyle is used for removed branches
	DangerStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Danger)

	// MutedStyle is used for hashes and hints
	MutedStyle = lipgloss.NewStyle().Foreground(DefaultTheme.Muted)
)
