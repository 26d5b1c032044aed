package blocks

import (
	"html"
	"regexp"
	"strings"
)

// Type identifies the kind of a content block.
type Type string

const (
	TypeHeading   Type = "heading"
	TypeParagraph Type = "paragraph"
	TypeCode      Type = "code"
	TypeTable     Type = "table"
)

// validTypes is the closed set of recognized block types.
var validTypes = map[Type]bool{
	TypeHeading:   true,
	TypeParagraph: true,
	TypeCode:      true,
	TypeTable:     true,
}

// Valid reports whether t is one of the known block types.
func (t Type) Valid() bool {
	return validTypes[t]
}

// Block is a single unit of parsed Markdown.
//
// Level is set only for headings (1-6) and Language only for code blocks.
// Content holds inline-styled text for headings and paragraphs, the raw
// fenced text for code, and rendered table markup for tables.
type Block struct {
	ID       string `json:"id"`
	Type     Type   `json:"type"`
	Level    int    `json:"level,omitempty"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

// IsHeading reports whether b is a heading block.
func (b Block) IsHeading() bool { return b.Type == TypeHeading }

// Headings returns the heading blocks of bs in order.
func Headings(bs []Block) []Block {
	out := make([]Block, 0, len(bs)/4)
	for _, b := range bs {
		if b.IsHeading() {
			out = append(out, b)
		}
	}
	return out
}

// Filter returns the blocks whose content contains query, ignoring case.
// A blank query matches everything.
func Filter(bs []Block, query string) []Block {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return bs
	}
	out := make([]Block, 0, len(bs))
	for _, b := range bs {
		if strings.Contains(strings.ToLower(b.Content), q) {
			out = append(out, b)
		}
	}
	return out
}

// HasCode reports whether any block is a code block.
func HasCode(bs []Block) bool {
	for _, b := range bs {
		if b.Type == TypeCode {
			return true
		}
	}
	return false
}

// Counts tallies blocks by type.
func Counts(bs []Block) map[Type]int {
	counts := make(map[Type]int, len(validTypes))
	for _, b := range bs {
		counts[b.Type]++
	}
	return counts
}

var markupTag = regexp.MustCompile(`<[^>]+>`)

// PlainText strips inline markup from content and unescapes entities.
func PlainText(content string) string {
	return html.UnescapeString(markupTag.ReplaceAllString(content, ""))
}
