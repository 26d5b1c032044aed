// Package highlight renders code blocks with syntax highlighting.
package highlight

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Highlighter turns source code into HTML.
type Highlighter interface {
	Highlight(code, language string) (string, error)
}

// Goldmark highlights code by rendering it as a fenced block through
// goldmark with the chroma-backed highlighting extension.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates a Goldmark highlighter using the named chroma style.
func NewGoldmark(style string) *Goldmark {
	if style == "" {
		style = DefaultStyle
	}
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
	}
}

// Highlight returns highlighted HTML for code in the given language.
func (g *Goldmark) Highlight(code, language string) (string, error) {
	fenceLen := 3
	for strings.Contains(code, strings.Repeat("`", fenceLen)) {
		fenceLen++
	}
	f := strings.Repeat("`", fenceLen)

	var src strings.Builder
	src.WriteString(f)
	src.WriteString(language)
	src.WriteString("\n")
	src.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		src.WriteString("\n")
	}
	src.WriteString(f)
	src.WriteString("\n")

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src.String()), &buf); err != nil {
		return "", fmt.Errorf("highlighting %s code: %w", language, err)
	}
	return buf.String(), nil
}

// Plain renders code escaped inside pre/code without highlighting.
func Plain(code, language string) string {
	class := ""
	if language != "" {
		class = fmt.Sprintf(` class="language-%s"`, html.EscapeString(language))
	}
	return fmt.Sprintf("<pre><code%s>%s</code></pre>", class, html.EscapeString(code))
}
