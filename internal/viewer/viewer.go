// Package viewer holds the state behind the document viewer: the loaded
// block snapshot, the search query, the theme and the navigation drawer.
package viewer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ziadkadry99/mdview/internal/blocks"
	"github.com/ziadkadry99/mdview/internal/logger"
)

// ErrSuperseded is returned by Reload when a newer reload started before
// this one finished; its result is discarded.
var ErrSuperseded = errors.New("reload superseded")

// BlockLoader loads and combines documents.
type BlockLoader interface {
	LoadAll(ctx context.Context, ids []string) ([]blocks.Block, error)
}

// ThemeStore persists the dark-mode preference.
type ThemeStore interface {
	LoadDark(ctx context.Context) (bool, error)
	SaveDark(ctx context.Context, dark bool) error
}

// Snapshot is an immutable view of the loaded documents. Readers must not
// modify the slices.
type Snapshot struct {
	Blocks   []blocks.Block
	Headings []blocks.Block
	LoadedAt time.Time
	Err      error
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithThemeStore persists the theme through store.
func WithThemeStore(store ThemeStore) Option {
	return func(v *Viewer) { v.themes = store }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.log = l
		}
	}
}

// WithDefaultDark sets the theme used when no preference is stored.
func WithDefaultDark(dark bool) Option {
	return func(v *Viewer) { v.dark = NewSignal(dark) }
}

// Viewer combines a loader with the UI state derived from its output.
type Viewer struct {
	loader BlockLoader
	docs   []string
	themes ThemeStore
	log    *logger.Logger

	snapshot *Signal[Snapshot]
	query    *Signal[string]
	dark     *Signal[bool]
	menuOpen *Signal[bool]

	gen       atomic.Uint64
	publishMu sync.Mutex
	stopTheme func()
}

// New creates a Viewer that loads docs through loader.
func New(loader BlockLoader, docs []string, opts ...Option) *Viewer {
	v := &Viewer{
		loader:   loader,
		docs:     append([]string(nil), docs...),
		log:      logger.Discard(),
		snapshot: NewSignal(Snapshot{Blocks: []blocks.Block{}, Headings: []blocks.Block{}}),
		query:    NewSignal(""),
		dark:     NewSignal(false),
		menuOpen: NewSignal(false),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Start restores the stored theme, begins saving theme changes and performs
// the initial load.
func (v *Viewer) Start(ctx context.Context) error {
	if v.themes != nil {
		if dark, err := v.themes.LoadDark(ctx); err != nil {
			v.log.ThemeError("load", err)
		} else {
			v.dark.Set(dark)
		}
		v.stopTheme = v.dark.Subscribe(func(dark bool) {
			if err := v.themes.SaveDark(context.Background(), dark); err != nil {
				v.log.ThemeError("save", err)
			}
		})
	}
	return v.Reload(ctx)
}

// Close stops persisting theme changes.
func (v *Viewer) Close() {
	if v.stopTheme != nil {
		v.stopTheme()
	}
}

// Documents returns the document identifiers this viewer loads.
func (v *Viewer) Documents() []string {
	return append([]string(nil), v.docs...)
}

// Reload loads every document and publishes the result as a new snapshot.
// On failure an empty snapshot carrying the error is published so readers
// never see stale or partial content. When reloads overlap, only the most
// recently started one publishes. A reload whose ctx is cancelled before
// the load completes publishes nothing and returns the context error.
func (v *Viewer) Reload(ctx context.Context) error {
	gen := v.gen.Add(1)
	start := time.Now()
	v.log.LoadStarted(len(v.docs))

	bs, err := v.loader.LoadAll(ctx, v.docs)

	v.publishMu.Lock()
	defer v.publishMu.Unlock()

	if v.gen.Load() != gen {
		v.log.LoadSuperseded()
		return ErrSuperseded
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		v.log.LoadCancelled(ctxErr)
		return ctxErr
	}

	if err != nil {
		v.log.LoadFailed(err)
		v.snapshot.Set(Snapshot{
			Blocks:   []blocks.Block{},
			Headings: []blocks.Block{},
			LoadedAt: time.Now(),
			Err:      err,
		})
		return err
	}

	snap := Snapshot{
		Blocks:   bs,
		Headings: blocks.Headings(bs),
		LoadedAt: time.Now(),
	}
	v.log.LoadCompleted(len(v.docs), len(snap.Blocks), len(snap.Headings), time.Since(start))
	v.snapshot.Set(snap)
	return nil
}

// Snapshot returns the current snapshot.
func (v *Viewer) Snapshot() Snapshot {
	return v.snapshot.Get()
}

// Subscribe registers fn to receive every published snapshot.
func (v *Viewer) Subscribe(fn func(Snapshot)) (cancel func()) {
	return v.snapshot.Subscribe(fn)
}

// Blocks returns the loaded blocks filtered by the current query.
func (v *Viewer) Blocks() []blocks.Block {
	return blocks.Filter(v.Snapshot().Blocks, v.query.Get())
}

// Headings returns the loaded headings filtered by the current query.
func (v *Viewer) Headings() []blocks.Block {
	return blocks.Filter(v.Snapshot().Headings, v.query.Get())
}

// SetQuery sets the search query.
func (v *Viewer) SetQuery(q string) { v.query.Set(q) }

// ClearQuery resets the search query.
func (v *Viewer) ClearQuery() { v.query.Set("") }

// Query returns the current search query.
func (v *Viewer) Query() string { return v.query.Get() }

// Dark reports whether dark mode is on.
func (v *Viewer) Dark() bool { return v.dark.Get() }

// SetDark switches dark mode on or off.
func (v *Viewer) SetDark(dark bool) { v.dark.Set(dark) }

// ToggleDark flips dark mode and returns the new state.
func (v *Viewer) ToggleDark() bool {
	return v.dark.Update(func(d bool) bool { return !d })
}

// MenuOpen reports whether the mobile navigation drawer is open.
func (v *Viewer) MenuOpen() bool { return v.menuOpen.Get() }

// ToggleMenu flips the navigation drawer and returns the new state.
func (v *Viewer) ToggleMenu() bool {
	return v.menuOpen.Update(func(open bool) bool { return !open })
}

// CloseMenu closes the navigation drawer.
func (v *Viewer) CloseMenu() { v.menuOpen.Set(false) }
