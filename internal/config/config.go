package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Backend names.
const (
	BackendGit   = "git"
	BackendGoGit = "go-git"
)

// Theme names.
const (
	ThemeDefault = "default"
	ThemeNone    = "none"
)

// DefaultCount is the reflog window used when neither the command line
// nor the config file sets one.
const DefaultCount = 10

// Config holds the git-recycle configuration
type Config struct {
	Count   int    `toml:"count"`
	Workers int    `toml:"workers"`
	Backend string `toml:"backend"`
	Theme   string `toml:"theme"`
	Copy    bool   `toml:"copy"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Count:   DefaultCount,
		Workers: 1,
		Backend: BackendGit,
		Theme:   ThemeDefault,
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-recycle", "config.toml"), nil
}

// Load reads config from ~/.config/git-recycle/config.toml
// Returns Default() if the file doesn't exist (no error)
// Returns error only if the file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path. Settings missing from the file keep
// their defaults.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}
