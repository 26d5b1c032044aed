package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/mdview/internal/blocks"
)

// SearchEntry represents a single searchable block.
type SearchEntry struct {
	ID      string      `json:"id"`
	Type    blocks.Type `json:"type"`
	Level   int         `json:"level,omitempty"`
	Content string      `json:"content"`
}

// BuildSearchIndex builds one entry per block. Content is kept exactly as
// stored so the page script matches the same text blocks.Filter does.
func BuildSearchIndex(bs []blocks.Block) []SearchEntry {
	entries := make([]SearchEntry, 0, len(bs))
	for _, b := range bs {
		entries = append(entries, SearchEntry{
			ID:      b.ID,
			Type:    b.Type,
			Level:   b.Level,
			Content: b.Content,
		})
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
