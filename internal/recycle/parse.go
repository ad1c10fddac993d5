package recycle

import (
	"regexp"
	"strings"
)

var (
	historyLine = regexp.MustCompile(`^(\w+) (.+)$`)
	refLine     = regexp.MustCompile(`^(\w+)\s+(\w+)\s+refs/(.+)$`)
	refCategory = regexp.MustCompile(`^\w+/`)
)

// ParseHistory parses reflog output into entries, preserving order.
// Lines that are not "<hash> <description>" are skipped.
func ParseHistory(raw string) []HistoryEntry {
	var entries []HistoryEntry
	for _, line := range splitLines(raw) {
		m := historyLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, HistoryEntry{Hash: m[1], Description: m[2]})
	}
	return entries
}

// ParseRefs parses ref listing output into entries, preserving order.
// Lines that are not "<hash> <type> refs/<path>" are skipped.
func ParseRefs(raw string) []RefEntry {
	var refs []RefEntry
	for _, line := range splitLines(raw) {
		m := refLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		path := m[3]
		refs = append(refs, RefEntry{
			Hash:       m[1],
			ObjectType: m[2],
			FullPath:   path,
			IsRemote:   strings.HasPrefix(path, remotePrefix),
			ShortName:  refCategory.ReplaceAllString(path, ""),
		})
	}
	return refs
}

func splitLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
