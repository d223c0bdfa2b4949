// Package markdown renders markdown reports for the terminal with glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/amonks/ktra/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

// cache holds one glamour renderer per wrap width.
var cache = struct {
	sync.Mutex
	byWidth map[int]renderer
}{byWidth: map[int]renderer{}}

// reportStyle is glamour's ASCII style with dashes for list bullets, so
// output reads the same piped or on a terminal.
func reportStyle() ansi.StyleConfig {
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	return style
}

func rendererFor(width int) renderer {
	cache.Lock()
	defer cache.Unlock()
	if r, ok := cache.byWidth[width]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(glamour.WithStyles(reportStyle()), glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	cache.byWidth[width] = r
	return r
}

// Render wraps markdown to width and indents every line by indent spaces.
// Blank input renders as nil. If glamour fails the cleaned input is used.
func Render(width, indent int, input []byte) []byte {
	source := clean(string(input))
	if internalstrings.IsBlank(source) {
		return nil
	}
	indent = max(indent, 0)

	out := source
	if r := rendererFor(max(width-indent, 1)); r != nil {
		if rendered, err := r.Render(source); err == nil {
			out = clean(rendered)
		}
	}
	out = dropLeadingBlankLines(out)
	if internalstrings.IsBlank(out) {
		return nil
	}
	return []byte(internalstrings.IndentBlock(out, indent))
}

// SafeRender is Render, falling back to the cleaned input if the renderer
// panics.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			out = []byte(internalstrings.IndentBlock(clean(string(input)), indent))
		}
	}()
	return Render(width, indent, input)
}

func clean(value string) string {
	return internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(value))
}

func dropLeadingBlankLines(value string) string {
	lines := strings.Split(value, "\n")
	for len(lines) > 0 && internalstrings.IsBlank(lines[0]) {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}
