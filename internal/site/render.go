package site

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/highlight"
	"github.com/ziadkadry99/mdview/internal/logger"
)

// maxHeadingTag caps heading elements; deeper levels render as h5.
const maxHeadingTag = 5

// pageData holds the data passed to the page template.
type pageData struct {
	Title      string
	Query      string
	Dark       bool
	Live       bool
	Content    template.HTML
	SidebarTOC template.HTML
	NoMatches  bool
	Error      string
	BasePath   string
}

// Renderer turns blocks into HTML fragments.
type Renderer struct {
	hl  highlight.Highlighter
	log *logger.Logger
}

// NewRenderer creates a Renderer. A nil highlighter renders code as plain
// escaped text.
func NewRenderer(hl highlight.Highlighter, log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Discard()
	}
	return &Renderer{hl: hl, log: log}
}

// Blocks renders bs in order.
func (r *Renderer) Blocks(bs []blocks.Block) string {
	var b strings.Builder
	for _, blk := range bs {
		b.WriteString(r.Block(blk))
		b.WriteString("\n")
	}
	return b.String()
}

// Block renders a single block. Heading, paragraph and table content is
// emitted as stored; code is escaped or highlighted.
func (r *Renderer) Block(b blocks.Block) string {
	id := html.EscapeString(b.ID)
	switch b.Type {
	case blocks.TypeHeading:
		tag := min(max(b.Level, 1), maxHeadingTag)
		return fmt.Sprintf(`<h%d id="%s" class="block">%s</h%d>`, tag, id, b.Content, tag)
	case blocks.TypeCode:
		return fmt.Sprintf(`<div id="%s" class="block code-block">%s</div>`, id, r.code(b))
	case blocks.TypeTable:
		return fmt.Sprintf(`<div id="%s" class="block table-wrap">%s</div>`, id, b.Content)
	default:
		return fmt.Sprintf(`<p id="%s" class="block">%s</p>`, id, b.Content)
	}
}

func (r *Renderer) code(b blocks.Block) string {
	if r.hl == nil {
		return highlight.Plain(b.Content, b.Language)
	}
	out, err := r.hl.Highlight(b.Content, b.Language)
	if err != nil {
		r.log.HighlightError(b.Language, err)
		return highlight.Plain(b.Content, b.Language)
	}
	return out
}

// page assembles template data for the given blocks and headings.
func (r *Renderer) page(title, query string, bs, headings []blocks.Block) pageData {
	return pageData{
		Title:      title,
		Query:      query,
		Content:    template.HTML(r.Blocks(bs)),
		SidebarTOC: template.HTML(BuildOutline(headings).ToHTML()),
		NoMatches:  strings.TrimSpace(query) != "" && len(headings) == 0,
	}
}
