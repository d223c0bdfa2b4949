package task

import (
	"fmt"

	"github.com/amonks/ktra/internal/ids"
	internalstrings "github.com/amonks/ktra/internal/strings"
)

// IDIndex indexes task IDs for prefix matching and display.
type IDIndex struct {
	ids      []string
	original map[string]string
}

// NewIDIndex builds an IDIndex from a slice of tasks.
func NewIDIndex(tasks []Task) IDIndex {
	taskIDs := make([]string, 0, len(tasks))
	original := make(map[string]string, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
		original[internalstrings.NormalizeLower(task.ID)] = task.ID
	}
	return IDIndex{ids: ids.NormalizeUniqueIDs(taskIDs), original: original}
}

// Resolve returns the full task ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTaskIDPrefix, prefix)
	}

	if id, ok := index.original[match]; ok {
		return id, nil
	}
	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by lowercased ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.ids)
}
