package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	tableCellMaxWidth = 50
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// tableViewportWidth returns the terminal width, or 0 when stdout is not a
// terminal.
var tableViewportWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

var cellBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as left-aligned columns. On a
// terminal the last column is padded out to the terminal width.
func FormatTable(headers []string, rows [][]string) string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, cleanRow(headers))
	for _, row := range rows {
		all = append(all, cleanRow(row))
	}

	widths := make([]int, len(headers))
	for _, row := range all {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}

	if viewport := tableViewportWidth(); viewport > 0 && len(widths) > 0 {
		last := len(widths) - 1
		used := 0
		for _, width := range widths[:last] {
			used += width + tableColumnGap
		}
		widths[last] = max(widths[last], viewport-used)
	}

	var b strings.Builder
	for _, row := range all {
		for i, cell := range row {
			pad := 0
			if i < len(widths) {
				pad = widths[i] - ansi.StringWidth(cell)
			}
			b.WriteString(cell)
			if i == len(row)-1 {
				b.WriteString(strings.Repeat(" ", pad))
				break
			}
			b.WriteString(strings.Repeat(" ", pad+tableColumnGap))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TruncateTableCell flattens line breaks and limits a cell's visible width,
// keeping escape sequences intact.
func TruncateTableCell(value string) string {
	value = cellBreaks.Replace(value)
	if ansi.StringWidth(value) <= tableCellMaxWidth {
		return value
	}
	return ansi.Truncate(value, tableCellMaxWidth, tableCellEllipsis)
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = cellBreaks.Replace(cell)
	}
	return cleaned
}
