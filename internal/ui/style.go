package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/ktra/task"
)

// pointColors gives each value on the point scale its own colour, from
// calm to urgent.
var pointColors = map[task.Points]lipgloss.Color{
	0: lipgloss.Color("245"),
	1: lipgloss.Color("39"),
	2: lipgloss.Color("42"),
	3: lipgloss.Color("220"),
	5: lipgloss.Color("208"),
	8: lipgloss.Color("196"),
}

var statusGlyphs = map[task.Status]string{
	task.StatusUnstarted: "[ ]",
	task.StatusDoing:     "[>]",
	task.StatusDone:      "[x]",
}

var milestoneText = map[task.MilestoneKind]string{
	task.MilestoneStart:    "START!",
	task.MilestoneComplete: "DONE!",
}

var (
	doneTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
)

// PointColor returns the colour for a point value.
func PointColor(points task.Points) lipgloss.Color {
	if color, ok := pointColors[points]; ok {
		return color
	}
	return lipgloss.Color("252")
}

// PointBadge renders a point value as a coloured "Npt" badge.
func PointBadge(points task.Points) string {
	return lipgloss.NewStyle().Bold(true).Foreground(PointColor(points)).Render(fmt.Sprintf("%dpt", points))
}

// StatusGlyph returns a fixed-width marker for a status.
func StatusGlyph(status task.Status) string {
	if glyph, ok := statusGlyphs[status]; ok {
		return glyph
	}
	return "[?]"
}

// TaskTitle renders a title, dimmed and struck through when done.
func TaskTitle(item task.Task) string {
	if item.IsDone() {
		return doneTitleStyle.Render(item.Title)
	}
	return item.Title
}

// Muted renders secondary text.
func Muted(text string) string {
	return mutedStyle.Render(text)
}

// Heading renders a section heading.
func Heading(text string) string {
	return headingStyle.Render(text)
}

// MilestoneText returns the celebration word for a milestone kind.
func MilestoneText(kind task.MilestoneKind) string {
	return milestoneText[kind]
}

// MilestoneBanner renders the celebration for m, centred in width columns
// on a background coloured by the task's points. A non-positive width
// renders just the padded word.
func MilestoneBanner(m task.Milestone, width int) string {
	text := MilestoneText(m.Kind)
	if text == "" {
		return ""
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(PointColor(m.Points)).
		Padding(0, 2)
	if width > 0 {
		style = style.Width(width).Align(lipgloss.Center)
	}
	return style.Render(strings.ToUpper(text))
}
