package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, prefixLengths map[string]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID, now))
}

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "PTS", "ORDER", "AGE", "TITLE"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = task.NewIDIndex(tasks).PrefixLengths()
	}

	for _, t := range tasks {
		row := []string{
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			ui.StatusGlyph(t.Status) + " " + string(t.Status),
			ui.PointBadge(t.Points),
			formatTaskOrder(t),
			formatTaskAge(t, now),
			ui.TruncateTableCell(t.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func formatTaskOrder(item task.Task) string {
	if item.Order == nil {
		return "-"
	}
	return strconv.Itoa(*item.Order)
}

func formatTaskAge(item task.Task, now time.Time) string {
	age, ok := task.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(age)
}
