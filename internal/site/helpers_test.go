package site

import (
	"context"
	"sync"

	"github.com/ziadkadry99/mdview/internal/blocks"
)

// stubLoader returns fixed blocks, or err when set.
type stubLoader struct {
	mu     sync.Mutex
	blocks []blocks.Block
	err    error
	calls  int
}

func (s *stubLoader) LoadAll(ctx context.Context, ids []string) ([]blocks.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return append([]blocks.Block(nil), s.blocks...), nil
}

func (s *stubLoader) set(bs []blocks.Block, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks, s.err = bs, err
}

func (s *stubLoader) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func sampleBlocks() []blocks.Block {
	return []blocks.Block{
		{ID: "h-intro", Type: blocks.TypeHeading, Level: 1, Content: "Intro"},
		{ID: "p-1", Type: blocks.TypeParagraph, Content: "Hello <strong>world</strong>"},
		{ID: "h-setup", Type: blocks.TypeHeading, Level: 2, Content: "Setup"},
		{ID: "c-1", Type: blocks.TypeCode, Language: "go", Content: "x := <1>"},
		{ID: "h-deep", Type: blocks.TypeHeading, Level: 6, Content: "Deep"},
		{ID: "t-1", Type: blocks.TypeTable, Content: "<table><thead><tr><th>A</th></tr></thead><tbody></tbody></table>"},
	}
}
