package board

import (
	"fmt"
	"strings"

	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

const maxBarWidth = 40

func renderWeek(summary task.WeekSummary, width int) string {
	lines := []string{
		labelStyle.Render("Last 7 days"),
		"",
		fmt.Sprintf("Completed:   %d tasks, %dpt", summary.CompletedCount, summary.CompletedPoints),
		fmt.Sprintf("In progress: %dpt", summary.InProgressPoints),
		"",
	}

	barWidth := width - 16
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}
	peak := summary.MaxBucket()
	for _, bucket := range summary.Histogram {
		bar := ""
		if peak > 0 && bucket.Count > 0 {
			length := bucket.Count * barWidth / peak
			if length < 1 {
				length = 1
			}
			bar = histogramStyle.Render(strings.Repeat("#", length))
		}
		badge := ui.PointBadge(bucket.Points)
		lines = append(lines, fmt.Sprintf("%s%s |%s %d", badge, strings.Repeat(" ", 4-len(fmt.Sprintf("%dpt", bucket.Points))), bar, bucket.Count))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}
