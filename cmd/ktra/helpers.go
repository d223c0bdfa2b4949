package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/internal/validation"
	"github.com/amonks/ktra/task"
)

func encodeJSONToStdout(value any) error {
	data, err := sonic.ConfigStd.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}

func logHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		prefixLen, ok := prefixLengths[strings.ToLower(id)]
		if !ok {
			return highlight(id, 0)
		}
		return highlight(id, prefixLen)
	}
}

// storeHighlighter highlights IDs by their shortest unique prefix within
// the store's current collection.
func storeHighlighter(store *task.Store) func(string) string {
	return logHighlighter(task.NewIDIndex(store.List()).PrefixLengths(), ui.HighlightID)
}

func pointsUsage() string {
	return validation.FormatValidValues(task.ValidPoints())
}

func statusUsage() string {
	return validation.FormatValidValues(task.ValidStatuses())
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
