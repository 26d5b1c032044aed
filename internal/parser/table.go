package parser

import (
	"regexp"
	"strings"
)

// separatorRow matches the header/body divider of a Markdown table,
// e.g. "|---|:--:|".
var separatorRow = regexp.MustCompile(`^[\s|:\-]+$`)

// RenderTable converts a run of trimmed table rows into an HTML table. The
// first non-separator row becomes the header; every cell is inline-styled.
func RenderTable(rows []string) string {
	var kept [][]string
	for _, row := range rows {
		if separatorRow.MatchString(row) {
			continue
		}
		kept = append(kept, splitRow(row))
	}

	var b strings.Builder
	b.WriteString("<table>")
	if len(kept) == 0 {
		b.WriteString("</table>")
		return b.String()
	}

	b.WriteString("<thead><tr>")
	for _, cell := range kept[0] {
		b.WriteString("<th>")
		b.WriteString(Inline(cell))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range kept[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(Inline(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// splitRow splits a table row on '|'. The empty fields produced by the
// outer delimiters are dropped; empty cells between delimiters are kept.
func splitRow(row string) []string {
	cells := strings.Split(row, "|")
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
