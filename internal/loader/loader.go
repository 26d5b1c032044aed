// Package loader fetches Markdown documents and combines their parsed blocks.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/parser"
)

// ErrNoDocuments is returned when a configuration resolves to no documents.
var ErrNoDocuments = errors.New("no documents to load")

// FetchError reports a document that could not be retrieved.
type FetchError struct {
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ProgressFunc is called after each document finishes, successfully or not.
type ProgressFunc func(done, total int, id string)

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency bounds the number of in-flight fetches. Values below 1
// mean one fetch per document.
func WithConcurrency(n int) Option {
	return func(l *Loader) { l.concurrency = n }
}

// WithParser sets the parser applied to each fetched document.
func WithParser(p *parser.Parser) Option {
	return func(l *Loader) {
		if p != nil {
			l.parser = p
		}
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(l *Loader) { l.onProgress = fn }
}

// Loader fetches documents concurrently and parses them into blocks.
type Loader struct {
	fetcher     Fetcher
	parser      *parser.Parser
	concurrency int
	onProgress  ProgressFunc
}

// New creates a Loader that retrieves documents through fetcher.
func New(fetcher Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		parser:  parser.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches and parses a single document.
func (l *Loader) Load(ctx context.Context, id string) ([]blocks.Block, error) {
	text, err := l.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, &FetchError{ID: id, Err: err}
	}
	return l.parser.Parse(text), nil
}

// LoadAll fetches every document concurrently and returns their blocks
// concatenated in the order of ids, regardless of completion order. If any
// fetch fails the whole load fails: remaining fetches are cancelled and no
// blocks are returned. The returned error is the first failure observed.
func (l *Loader) LoadAll(ctx context.Context, ids []string) ([]blocks.Block, error) {
	total := len(ids)
	if total == 0 {
		return []blocks.Block{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	limit := l.concurrency
	if limit < 1 || limit > total {
		limit = total
	}
	sem := make(chan struct{}, limit)

	results := make([][]blocks.Block, total)
	var (
		mu       sync.Mutex
		firstErr error
		done     int64
		wg       sync.WaitGroup
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i, id := range ids {
		select {
		case <-ctx.Done():
			fail(&FetchError{ID: id, Err: ctx.Err()})
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()

			bs, err := l.Load(ctx, id)
			if err != nil {
				fail(err)
			} else {
				results[i] = bs
			}

			n := atomic.AddInt64(&done, 1)
			if l.onProgress != nil {
				l.onProgress(int(n), total, id)
			}
		}(i, id)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	size := 0
	for _, r := range results {
		size += len(r)
	}
	all := make([]blocks.Block, 0, size)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
