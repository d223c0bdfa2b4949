package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var idPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// HighlightID renders an ID with its shortest unique prefix emphasized.
// Without colour support the ID is returned unchanged.
func HighlightID(id string, prefixLen int) string {
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	return idPrefixStyle.Render(id[:prefixLen]) + id[prefixLen:]
}

// PrefixLength looks up the unique prefix length for id in a map keyed by
// lowercased IDs.
func PrefixLength(lengths map[string]int, id string) int {
	if id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}
