package task

import (
	"strings"

	internalstrings "github.com/amonks/ktra/internal/strings"
)

// NormalizeTitle trims surrounding whitespace and collapses inner runs.
func NormalizeTitle(title string) string {
	return internalstrings.NormalizeWhitespace(title)
}

func normalizeStatus(status Status) Status {
	return Status(strings.ToLower(strings.TrimSpace(string(status))))
}

func normalizeStatusInput(status Status) (Status, error) {
	normalized := normalizeStatus(status)
	if err := ValidateStatus(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// ParseStatus parses user input into a Status.
func ParseStatus(value string) (Status, error) {
	return normalizeStatusInput(Status(value))
}
