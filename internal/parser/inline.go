package parser

import (
	"regexp"
	"strings"
)

var (
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	inlineCodePattern = regexp.MustCompile("`(.+?)`")

	codeSpanPattern   = regexp.MustCompile(`<code>.*?</code>`)
	styledSpanPattern = regexp.MustCompile(`<strong>.*?</strong>|<code>.*?</code>`)
)

// Inline applies inline styling to a line of prose: **bold** spans become
// <strong> and `code` spans become <code>. Bold runs first, so a bold span
// may contain inline code but an inline code span is never re-scanned for
// bold markers. Text already inside <strong> or <code> is left alone, which
// makes Inline idempotent even when stray markers survive the first pass.
func Inline(text string) string {
	text = replaceOutside(text, styledSpanPattern, boldPattern, "<strong>$1</strong>")
	return replaceOutside(text, codeSpanPattern, inlineCodePattern, "<code>$1</code>")
}

// replaceOutside applies pattern to the parts of text not matched by skip.
func replaceOutside(text string, skip, pattern *regexp.Regexp, repl string) string {
	spans := skip.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return pattern.ReplaceAllString(text, repl)
	}
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(pattern.ReplaceAllString(text[last:s[0]], repl))
		b.WriteString(text[s[0]:s[1]])
		last = s[1]
	}
	b.WriteString(pattern.ReplaceAllString(text[last:], repl))
	return b.String()
}
