package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/config"
	"github.com/ziadkadry99/mdview/internal/loader"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Exclude = append(cfg.Exclude, "**/draft.md")
	return cfg
}

func TestResolveDocuments(t *testing.T) {
	cfg := testConfig()
	docs, err := resolveDocuments([]string{"../testdata/docs/intro.md", "../testdata/docs/guide/*.md"}, cfg)
	if err != nil {
		t.Fatalf("resolveDocuments: %v", err)
	}
	want := []string{
		"../testdata/docs/intro.md",
		filepath.Join("..", "testdata", "docs", "guide", "config.md"),
	}
	if len(docs) != len(want) {
		t.Fatalf("docs = %v, want %v", docs, want)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %q, want %q", i, docs[i], want[i])
		}
	}
}

func TestResolveDocumentsNoMatch(t *testing.T) {
	_, err := resolveDocuments([]string{"../testdata/docs/*.txt"}, testConfig())
	if !errors.Is(err, loader.ErrNoDocuments) {
		t.Errorf("err = %v, want ErrNoDocuments", err)
	}
}

func TestBuildLoaderEndToEnd(t *testing.T) {
	cfg := testConfig()
	docs, err := resolveDocuments([]string{"../testdata/docs/intro.md", "../testdata/docs/guide/**/*.md"}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	bs, err := buildLoader(cfg).LoadAll(context.Background(), docs)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	counts := blocks.Counts(bs)
	if counts[blocks.TypeHeading] != 3 {
		t.Errorf("headings = %d, want 3", counts[blocks.TypeHeading])
	}
	if counts[blocks.TypeCode] != 1 || counts[blocks.TypeTable] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if bs[0].Content != "Introduction" {
		t.Errorf("first block = %+v, want the intro heading", bs[0])
	}
	if last := bs[len(bs)-1]; last.Type != blocks.TypeTable {
		t.Errorf("last block = %+v, want the config table", last)
	}
}

func TestBuildLoaderMissingFileFails(t *testing.T) {
	_, err := buildLoader(testConfig()).LoadAll(context.Background(),
		[]string{"../testdata/docs/intro.md", "../testdata/docs/missing.md"})

	var fe *loader.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *loader.FetchError", err)
	}
	if fe.ID != "../testdata/docs/missing.md" {
		t.Errorf("FetchError.ID = %q", fe.ID)
	}
}
