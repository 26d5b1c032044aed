package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/ziadkadry99/mdview/internal/blocks"
)

// Outline is a node in the heading outline shown in the sidebar.
type Outline struct {
	Heading  blocks.Block
	Children []*Outline
}

// BuildOutline nests headings under the nearest preceding heading with a
// lower level. Skipped levels attach to the closest ancestor.
func BuildOutline(headings []blocks.Block) *Outline {
	root := &Outline{}
	stack := []*Outline{root}

	for _, h := range headings {
		if !h.IsHeading() {
			continue
		}
		node := &Outline{Heading: h}
		for len(stack) > 1 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}
	return root
}

// ToHTML renders the outline as nested <ul><li> HTML for the sidebar.
func (o *Outline) ToHTML() string {
	var b strings.Builder
	renderChildren(&b, o)
	return b.String()
}

func renderChildren(b *strings.Builder, node *Outline) {
	if len(node.Children) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, child := range node.Children {
		h := child.Heading
		fmt.Fprintf(b, `<li class="level-%d"><a href="#%s" data-heading="%s">%s</a>`,
			h.Level, html.EscapeString(h.ID), html.EscapeString(h.ID), html.EscapeString(blocks.PlainText(h.Content)))
		renderChildren(b, child)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}
