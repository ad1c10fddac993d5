// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/git-recycle/internal/recycle"
)

// shortHashLen is the number of hash characters shown in tables.
const shortHashLen = 7

// MarkerHeaders are the column headers of a marker table.
var MarkerHeaders = []string{"BRANCH", "COMMIT", "REFLOG"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// MarkerTableRow returns the table cells for one marker branch,
// matching MarkerHeaders.
func MarkerTableRow(m recycle.Marker) []string {
	hash := m.Hash
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	return []string{m.Name, hash, m.Description}
}

// RenderMarkers renders markers as a table, or "" if there are none.
func RenderMarkers(markers []recycle.Marker) string {
	rows := make([][]string, 0, len(markers))
	for _, m := range markers {
		rows = append(rows, MarkerTableRow(m))
	}
	return RenderTable(MarkerHeaders, rows)
}
