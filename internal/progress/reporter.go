package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while documents are loaded.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a CIReporter if the CI environment variable is set,
// or a TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

// DocumentProgress adapts a Reporter to the loader's progress callback.
// Its methods are safe for concurrent use.
type DocumentProgress struct {
	r        Reporter
	mu       sync.Mutex
	started  bool
	finished bool
	last     int
}

// Documents returns a DocumentProgress reporting to r.
func Documents(r Reporter) *DocumentProgress {
	return &DocumentProgress{r: r}
}

// Update records that done of total documents have finished. The first call
// starts the reporter. Counts that arrive out of order and calls after
// Finish are dropped.
func (p *DocumentProgress) Update(done, total int, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished || done <= p.last {
		return
	}
	if !p.started {
		p.r.Start(total)
		p.started = true
	}
	p.last = done
	p.r.Update(done, id)
}

// Finish stops the reporter. Call it once the load returns, whether or not
// every document reported. Only the first call has an effect.
func (p *DocumentProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true
	if p.started {
		p.r.Finish()
	}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Loading documents"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out(), "Loading %d documents\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.out(), "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.out(), "Documents loaded")
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}
