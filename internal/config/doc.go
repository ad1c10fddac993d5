// Package config handles loading and validation of git-recycle configuration.
//
// Configuration is read from ~/.config/git-recycle/config.toml. The file is
// optional: without it every setting has its default and git-recycle behaves
// like a plain "git recycle". Command line flags override file settings.
//
// # Key Settings
//
//   - count: reflog entries to scan when no N is given (default: 10)
//   - workers: concurrent ancestry checks (default: 1, strictly in order)
//   - backend: "git" (shell out) or "go-git" (in process) (default: "git")
//   - theme: "default" or "none" for colorless output
//   - copy: copy created branch names to the clipboard
//
// Example:
//
//	count = 30
//	workers = 4
//	backend = "go-git"
package config
