// Package terminal renders parsed blocks for display in a terminal.
package terminal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ziadkadry99/mdview/internal/blocks"
)

var (
	strongTag = regexp.MustCompile(`<strong>(.*?)</strong>`)
	codeTag   = regexp.MustCompile(`<code>(.*?)</code>`)
	cellTag   = regexp.MustCompile(`<t[hd]>(.*?)</t[hd]>`)
	rowTag    = regexp.MustCompile(`<tr>(.*?)</tr>`)
)

// Render formats bs as styled terminal text, one block per paragraph.
func Render(bs []blocks.Block) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, RenderBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

// RenderBlock formats a single block.
func RenderBlock(b blocks.Block) string {
	switch b.Type {
	case blocks.TypeHeading:
		return HeadingStyle.Render(strings.Repeat("#", b.Level) + " " + blocks.PlainText(b.Content))
	case blocks.TypeCode:
		box := CodeBoxStyle.Render(b.Content)
		if b.Language == "" {
			return box
		}
		return DimStyle.Render(b.Language) + "\n" + box
	case blocks.TypeTable:
		return renderTable(b.Content)
	default:
		return renderInline(b.Content)
	}
}

// RenderOutline formats headings as an indented outline.
func RenderOutline(headings []blocks.Block) string {
	var sb strings.Builder
	for _, h := range headings {
		indent := strings.Repeat("  ", max(h.Level-1, 0))
		fmt.Fprintf(&sb, "%s%s %s\n", indent, DimStyle.Render("-"), HeadingStyle.Render(blocks.PlainText(h.Content)))
	}
	return sb.String()
}

func renderInline(s string) string {
	s = strongTag.ReplaceAllStringFunc(s, func(m string) string {
		return StrongStyle.Render(strongTag.FindStringSubmatch(m)[1])
	})
	s = codeTag.ReplaceAllStringFunc(s, func(m string) string {
		return CodeStyle.Render(codeTag.FindStringSubmatch(m)[1])
	})
	return TextStyle.Render(blocks.PlainText(s))
}

// renderTable lays out the cells of a rendered HTML table in aligned
// columns.
func renderTable(markup string) string {
	var rows [][]string
	for _, r := range rowTag.FindAllStringSubmatch(markup, -1) {
		var cells []string
		for _, c := range cellTag.FindAllStringSubmatch(r[1], -1) {
			cells = append(cells, blocks.PlainText(c[1]))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}

	var widths []int
	for _, r := range rows {
		for i, c := range r {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], len([]rune(c)))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for i, r := range rows {
		cols := make([]string, len(r))
		for j, c := range r {
			cols[j] = c + strings.Repeat(" ", widths[j]-len([]rune(c)))
		}
		line := strings.Join(cols, " │ ")
		if i == 0 {
			line = HeadingStyle.Render(line)
		}
		lines = append(lines, line)
		if i == 0 && len(rows) > 1 {
			total := 0
			for _, w := range widths {
				total += w
			}
			total += 3 * (len(widths) - 1)
			lines = append(lines, DimStyle.Render(strings.Repeat("─", total)))
		}
	}
	return TableStyle.Render(strings.Join(lines, "\n"))
}
