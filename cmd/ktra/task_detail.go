package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"

	internalstrings "github.com/amonks/ktra/internal/strings"
	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

const taskDetailLineWidth = 80

// taskDetailLabelWidth is the width of "Completed: ", the longest label.
const taskDetailLabelWidth = 11

// formatTaskDetail renders one task for `ktra show`.
func formatTaskDetail(t task.Task, highlight func(string) string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", highlight(t.ID))
	fmt.Fprintf(&b, "Title:     %s\n", formatDetailTitle(t.Title))
	fmt.Fprintf(&b, "Points:    %s\n", ui.PointBadge(t.Points))
	fmt.Fprintf(&b, "Status:    %s %s\n", ui.StatusGlyph(t.Status), t.Status)
	fmt.Fprintf(&b, "Created:   %s (%s)\n", t.CreatedAt.Local().Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(t.CreatedAt, now))
	if age, ok := task.CompletionAgeData(t, now); ok {
		fmt.Fprintf(&b, "Completed: %s (%s ago)\n", t.CompletedAt.Local().Format("2006-01-02 15:04:05"), ui.FormatDurationShort(age))
	}
	if t.Order != nil {
		fmt.Fprintf(&b, "Order:     %d\n", *t.Order)
	}
	return b.String()
}

// formatDetailTitle wraps long titles and aligns continuation lines under
// the first.
func formatDetailTitle(title string) string {
	wrapped := wordwrap.String(title, taskDetailLineWidth-taskDetailLabelWidth)
	lines := strings.SplitN(wrapped, "\n", 2)
	if len(lines) == 1 {
		return wrapped
	}
	return lines[0] + "\n" + internalstrings.IndentBlock(lines[1], taskDetailLabelWidth)
}
