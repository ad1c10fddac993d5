// Package ui groups the terminal components of git-recycle.
//
// Subpackages:
//
//   - styles: color theme and lipgloss styles for result output
//   - progress: bubbletea spinner that reports reflog analysis progress
//   - static: non-interactive tables (marker branch listings)
//
// Everything interactive-looking is written to stderr so stdout stays
// clean for piping the branch names.
package ui
