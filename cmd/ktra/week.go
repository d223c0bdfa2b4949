package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/ktra/internal/listflags"
	"github.com/amonks/ktra/internal/markdown"
	"github.com/amonks/ktra/task"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Summarize the last seven days",
	Long: `Summarize tasks created in the last seven days: how many were
completed, their points, the points still in progress and a histogram of
completed tasks by point value.`,
	Args: cobra.NoArgs,
	RunE: runWeek,
}

var weekJSON bool

const weekLineWidth = 80

func init() {
	rootCmd.AddCommand(weekCmd)
	listflags.AddJSONFlag(weekCmd, &weekJSON)
}

func runWeek(cmd *cobra.Command, args []string) error {
	return withTaskSession(cmd.Context(), func(s *taskSession) error {
		summary := s.store.Week(s.store.Now())
		if weekJSON {
			return encodeJSONToStdout(summary)
		}
		fmt.Println(string(markdown.SafeRender(weekLineWidth, 0, []byte(formatWeekMarkdown(summary)))))
		return nil
	})
}

func formatWeekMarkdown(summary task.WeekSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Week of %s\n\n", summary.WindowStart.Local().Format("Jan 2"))
	fmt.Fprintf(&b, "- Completed: %s, %dpt\n", pluralize(summary.CompletedCount, "task", "tasks"), summary.CompletedPoints)
	fmt.Fprintf(&b, "- In progress: %dpt\n\n", summary.InProgressPoints)

	b.WriteString("## Completed by points\n\n")
	peak := summary.MaxBucket()
	for _, bucket := range summary.Histogram {
		fmt.Fprintf(&b, "- %dpt: %s%d\n", bucket.Points, histogramBar(bucket.Count, peak), bucket.Count)
	}
	return b.String()
}

const histogramWidth = 30

func histogramBar(count, peak int) string {
	if count <= 0 || peak <= 0 {
		return ""
	}
	length := count * histogramWidth / peak
	if length < 1 {
		length = 1
	}
	return strings.Repeat("=", length) + " "
}
