package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidBackends = []string{BackendGit, BackendGoGit}
	ValidThemes   = []string{ThemeDefault, ThemeNone}
)

// Validate checks all settings and returns the first problem found.
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", c.Count)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be at least 1", c.Workers)
	}
	if err := ValidateBackend(c.Backend); err != nil {
		return err
	}
	return validateEnum(c.Theme, "theme", ValidThemes)
}

// ValidateBackend validates a backend name against ValidBackends.
// Exported for use in CLI flag validation.
func ValidateBackend(backend string) error {
	return validateEnum(backend, "backend", ValidBackends)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions renders options as "a" or "b", or "a", "b", or "c".
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
