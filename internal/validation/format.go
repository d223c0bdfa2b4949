package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins values for error messages.
func FormatValidValues[T any](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, fmt.Sprint(value))
	}
	return strings.Join(formatted, ", ")
}

// FormatInvalidValueError wraps base with the rejected value and the accepted set.
func FormatInvalidValueError[T any](base error, value T, valid []T) error {
	return fmt.Errorf("%w: %q (valid: %s)", base, fmt.Sprint(value), FormatValidValues(valid))
}
