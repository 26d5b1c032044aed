package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at info level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// FromConfig builds a stderr logger from a level name such as "debug" or
// "warn". verbose forces debug level.
func FromConfig(levelName string, verbose bool) (*Logger, error) {
	level := log.InfoLevel
	if levelName != "" {
		parsed, err := log.ParseLevel(levelName)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if verbose {
		level = log.DebugLevel
	}
	return NewWithLevel(os.Stderr, level), nil
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// LoadStarted logs the start of a document load.
func (l *Logger) LoadStarted(documents int) {
	l.Debug("load started", "documents", documents)
}

// LoadCompleted logs a successful load.
func (l *Logger) LoadCompleted(documents, blocks, headings int, duration time.Duration) {
	l.Info("documents loaded",
		"documents", documents,
		"blocks", blocks,
		"headings", headings,
		"duration", duration.Round(time.Millisecond))
}

// LoadFailed logs a failed load.
func (l *Logger) LoadFailed(err error) {
	l.Error("load failed", "error", err)
}

// LoadSuperseded logs a load whose result was discarded for a newer one.
func (l *Logger) LoadSuperseded() {
	l.Debug("load superseded by a newer reload")
}

// LoadCancelled logs a load abandoned because its caller went away.
func (l *Logger) LoadCancelled(err error) {
	l.Warn("load cancelled", "error", err)
}

// DocumentChanged logs a watched document change.
func (l *Logger) DocumentChanged(path, op string) {
	l.Info("document changed", "path", path, "op", op)
}

// ThemeError logs a failure to load or persist the theme preference.
func (l *Logger) ThemeError(operation string, err error) {
	l.Warn("theme preference", "operation", operation, "error", err)
}

// HighlightError logs a syntax highlighting failure.
func (l *Logger) HighlightError(language string, err error) {
	l.Warn("highlight failed", "language", language, "error", err)
}

// ServerListening logs the server address.
func (l *Logger) ServerListening(addr string) {
	l.Info("server listening", "addr", addr)
}
