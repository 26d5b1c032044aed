package site

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/mdview/internal/loader"
	"github.com/ziadkadry99/mdview/internal/logger"
	"github.com/ziadkadry99/mdview/internal/viewer"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads documents when local files change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	reload   func(context.Context) error
	debounce time.Duration
	log      *logger.Logger

	closeOnce sync.Once
}

// NewWatcher watches the local files among docs. URLs are ignored.
// Directories are watched rather than files so editors that replace files
// on save are still noticed.
func NewWatcher(docs []string, reload func(context.Context) error, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Discard()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool),
		reload:   reload,
		debounce: DefaultDebounce,
		log:      log,
	}

	dirs := make(map[string]bool)
	for _, doc := range docs {
		if loader.IsURL(doc) {
			continue
		}
		abs, err := filepath.Abs(doc)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", doc, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Watched reports the number of files being watched.
func (w *Watcher) Watched() int { return len(w.files) }

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.DocumentChanged(ev.Name, ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("file watcher", "error", err)

		case <-pending:
			pending = nil
			if err := w.reload(ctx); err != nil && !errors.Is(err, viewer.ErrSuperseded) {
				w.log.Debug("reload after change failed", "error", err)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() { err = w.fsw.Close() })
	return err
}
