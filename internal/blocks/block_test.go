package blocks

import (
	"encoding/json"
	"strings"
	"testing"
)

func sample() []Block {
	return []Block{
		{ID: "1", Type: TypeHeading, Level: 1, Content: "Title"},
		{ID: "2", Type: TypeParagraph, Content: "Hello <strong>world</strong>."},
		{ID: "3", Type: TypeCode, Content: "const title = 1;", Language: "js"},
		{ID: "4", Type: TypeHeading, Level: 2, Content: "Usage"},
	}
}

func TestHeadings(t *testing.T) {
	hs := Headings(sample())
	if len(hs) != 2 {
		t.Fatalf("headings = %d, want 2", len(hs))
	}
	if hs[0].ID != "1" || hs[1].ID != "4" {
		t.Errorf("heading order = %q,%q, want 1,4", hs[0].ID, hs[1].ID)
	}
}

func TestHeadingsEmpty(t *testing.T) {
	if hs := Headings(nil); len(hs) != 0 {
		t.Errorf("Headings(nil) = %d blocks, want 0", len(hs))
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"1", "2", "3", "4"}},
		{"blank query keeps all", "   ", []string{"1", "2", "3", "4"}},
		{"case insensitive", "TITLE", []string{"1", "3"}},
		{"matches markup", "strong", []string{"2"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sample(), tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %d blocks, want %d", tt.query, len(got), len(tt.want))
			}
			for i, b := range got {
				if b.ID != tt.want[i] {
					t.Errorf("block %d id = %q, want %q", i, b.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterHeadingsOnly(t *testing.T) {
	// A title query over a heading and a paragraph keeps only the heading.
	bs := []Block{
		{ID: "h", Type: TypeHeading, Level: 1, Content: "Title"},
		{ID: "p", Type: TypeParagraph, Content: "Hello <strong>world</strong>."},
	}
	got := Filter(bs, "title")
	if len(got) != 1 || got[0].ID != "h" {
		t.Fatalf("Filter = %+v, want only the heading", got)
	}
}

func TestHasCode(t *testing.T) {
	if !HasCode(sample()) {
		t.Error("HasCode should be true when a code block is present")
	}
	if HasCode(Headings(sample())) {
		t.Error("HasCode should be false for headings only")
	}
}

func TestCounts(t *testing.T) {
	c := Counts(sample())
	if c[TypeHeading] != 2 || c[TypeParagraph] != 1 || c[TypeCode] != 1 || c[TypeTable] != 0 {
		t.Errorf("Counts = %v", c)
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeHeading, TypeParagraph, TypeCode, TypeTable} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if Type("list").Valid() {
		t.Error("list should not be valid")
	}
}

func TestBlockJSONOmitsUnusedFields(t *testing.T) {
	data, err := json.Marshal(Block{ID: "p", Type: TypeParagraph, Content: "x"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "level") || strings.Contains(s, "language") {
		t.Errorf("paragraph JSON should omit level and language: %s", s)
	}
	if !strings.Contains(s, `"type":"paragraph"`) {
		t.Errorf("type should encode as lowercase name: %s", s)
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<strong>bold</strong> and <code>x</code>", "bold and x"},
		{"<table><thead><tr><th>A</th></tr></thead></table>", "A"},
		{"a &amp; b", "a & b"},
	}
	for _, tt := range tests {
		if got := PlainText(tt.in); got != tt.want {
			t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
