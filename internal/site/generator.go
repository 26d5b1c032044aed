package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/highlight"
	"github.com/ziadkadry99/mdview/internal/logger"
	"github.com/ziadkadry99/mdview/internal/viewer"
)

// Generator exports the loaded documents as a static single-page site.
type Generator struct {
	Loader      viewer.BlockLoader
	Documents   []string
	OutputDir   string
	Title       string
	Dark        bool
	Highlighter highlight.Highlighter
	Log         *logger.Logger
}

// NewGenerator creates a Generator with the given loader and output directory.
func NewGenerator(l viewer.BlockLoader, docs []string, outputDir, title string) *Generator {
	return &Generator{
		Loader:    l,
		Documents: docs,
		OutputDir: outputDir,
		Title:     title,
	}
}

// Generate loads every document and writes index.html, search-index.json,
// style.css and script.js. Nothing is written if loading fails. Returns the
// number of blocks exported.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	bs, err := g.Loader.LoadAll(ctx, g.Documents)
	if err != nil {
		return 0, fmt.Errorf("loading documents: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	data := NewRenderer(g.Highlighter, g.Log).page(g.Title, "", bs, blocks.Headings(bs))
	data.Dark = g.Dark

	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	files := map[string][]byte{
		"index.html": page.Bytes(),
		"style.css":  []byte(cssContent),
		"script.js":  []byte(jsContent),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), content, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	if err := WriteSearchIndex(BuildSearchIndex(bs), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	return len(bs), nil
}
