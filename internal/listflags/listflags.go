// Package listflags registers the output flags shared by read-only commands.
package listflags

import (
	"github.com/spf13/cobra"

	"github.com/amonks/ktra/internal/validation"
	"github.com/amonks/ktra/task"
)

// AddJSONFlag adds a shared --json flag.
func AddJSONFlag(cmd *cobra.Command, target *bool) {
	if target == nil {
		cmd.Flags().Bool("json", false, "Output as JSON")
		return
	}

	cmd.Flags().BoolVar(target, "json", false, "Output as JSON")
}

// AddStatusFlag adds a --status filter flag.
func AddStatusFlag(cmd *cobra.Command, target *string) {
	usage := "Only show tasks with this status (" + validation.FormatValidValues(task.ValidStatuses()) + ")"
	if target == nil {
		cmd.Flags().String("status", "", usage)
		return
	}

	cmd.Flags().StringVar(target, "status", "", usage)
}

// StatusFilter parses the --status flag. It returns nil when the flag was
// not given.
func StatusFilter(cmd *cobra.Command, value string) (*task.Status, error) {
	if !cmd.Flags().Changed("status") {
		return nil, nil
	}
	status, err := task.ParseStatus(value)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// FilterByStatus keeps the tasks matching status, preserving order. A nil
// status keeps everything.
func FilterByStatus(tasks []task.Task, status *task.Status) []task.Task {
	if status == nil {
		return tasks
	}
	filtered := make([]task.Task, 0, len(tasks))
	for _, item := range tasks {
		if item.Status == *status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
