package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/amonks/ktra/internal/ui"
	"github.com/amonks/ktra/task"
)

type taskItem struct {
	task task.Task
}

func (item taskItem) FilterValue() string {
	return item.task.Title
}

// taskDelegate renders one row per task. The drag fields mirror the
// gesture tracker and are refreshed whenever it changes.
type taskDelegate struct {
	draggedID string
	hoverID   string
}

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	marker := "  "
	style := rowStyle
	switch {
	case d.draggedID != "" && item.task.ID == d.draggedID:
		marker = "* "
		style = rowDragged
	case d.hoverID != "" && item.task.ID == d.hoverID:
		marker = "+ "
		style = rowDropTarget
	case index == m.Index():
		marker = "> "
		style = rowSelected
	}
	fmt.Fprint(w, style.Render(formatTaskRow(marker, item.task, m.Width())))
}

func formatTaskRow(marker string, item task.Task, width int) string {
	prefix := marker + ui.StatusGlyph(item.Status) + " "
	badge := ui.PointBadge(item.Points)
	badgeWidth := lipgloss.Width(badge)

	titleWidth := width - runewidth.StringWidth(prefix) - badgeWidth - 1
	title := item.Title
	if titleWidth > 0 {
		title = truncateText(title, titleWidth)
	}
	gap := width - runewidth.StringWidth(prefix) - runewidth.StringWidth(title) - badgeWidth
	if gap < 1 {
		gap = 1
	}
	return prefix + ui.TaskTitle(task.Task{Title: title, Status: item.Status}) + strings.Repeat(" ", gap) + badge
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
