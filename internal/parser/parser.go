// Package parser turns Markdown text into an ordered list of content blocks.
//
// The parser is line oriented and recognises four constructs: fenced code,
// pipe tables, ATX headings and single-line paragraphs. Every line maps to at
// most one block; a contiguous run of table rows maps to exactly one.
package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ziadkadry99/mdview/internal/blocks"
)

const fence = "```"

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

// Option configures a Parser.
type Option func(*Parser)

// WithIDGenerator overrides the block ID source. The default generates
// random UUIDs.
func WithIDGenerator(next func() string) Option {
	return func(p *Parser) {
		if next != nil {
			p.newID = next
		}
	}
}

// WithFlushUnterminated makes the parser emit a code block for a fence that
// is still open at end of input. By default that content is dropped.
func WithFlushUnterminated(flush bool) Option {
	return func(p *Parser) {
		p.flushUnterminated = flush
	}
}

// Parser converts Markdown into blocks. The zero value is not usable; build
// one with New. A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	newID             func() string
	flushUnterminated bool
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{newID: uuid.NewString}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse converts text using the default parser.
func Parse(text string) []blocks.Block {
	return defaultParser.Parse(text)
}

// Parse converts text into blocks in source order.
func (p *Parser) Parse(text string) []blocks.Block {
	lines := splitLines(text)
	out := make([]blocks.Block, 0, len(lines)/2)

	var (
		inCode   bool
		codeBuf  []string
		tableBuf []string
		lang     string
	)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fence) {
			inCode = !inCode
			if inCode {
				lang = strings.TrimSpace(trimmed[len(fence):])
				codeBuf = codeBuf[:0]
			} else {
				out = append(out, blocks.Block{
					ID:       p.newID(),
					Type:     blocks.TypeCode,
					Content:  strings.Join(codeBuf, "\n"),
					Language: lang,
				})
				codeBuf = codeBuf[:0]
				lang = ""
			}
			continue
		}

		if inCode {
			codeBuf = append(codeBuf, line)
			continue
		}

		if strings.HasPrefix(trimmed, "|") {
			tableBuf = append(tableBuf, trimmed)
			if i+1 >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i+1]), "|") {
				out = append(out, blocks.Block{
					ID:      p.newID(),
					Type:    blocks.TypeTable,
					Content: RenderTable(tableBuf),
				})
				tableBuf = nil
			}
			continue
		}

		if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
			out = append(out, blocks.Block{
				ID:      p.newID(),
				Type:    blocks.TypeHeading,
				Level:   len(m[1]),
				Content: Inline(m[2]),
			})
			continue
		}

		if trimmed != "" {
			out = append(out, blocks.Block{
				ID:      p.newID(),
				Type:    blocks.TypeParagraph,
				Content: Inline(trimmed),
			})
		}
	}

	if inCode && p.flushUnterminated {
		out = append(out, blocks.Block{
			ID:       p.newID(),
			Type:     blocks.TypeCode,
			Content:  strings.Join(codeBuf, "\n"),
			Language: lang,
		})
	}

	return out
}

// splitLines normalizes CRLF and CR line endings before splitting.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
