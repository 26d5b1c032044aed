package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoadCompleted(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.LoadCompleted(2, 10, 3, 1500*time.Microsecond)

	out := buf.String()
	for _, want := range []string{"documents loaded", "documents=2", "blocks=10", "headings=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestDebugHelpersHiddenAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.LoadStarted(3)
	l.LoadSuperseded()
	if buf.Len() != 0 {
		t.Errorf("debug output at info level: %s", buf.String())
	}

	l = NewWithLevel(&buf, log.DebugLevel)
	l.LoadStarted(3)
	if !strings.Contains(buf.String(), "load started") {
		t.Errorf("debug output missing: %s", buf.String())
	}
}

func TestLoadFailed(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).LoadFailed(errors.New("fetch a.md: 404"))
	if !strings.Contains(buf.String(), "fetch a.md: 404") {
		t.Errorf("error not logged: %s", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    log.Level
		wantErr bool
	}{
		{"", false, log.InfoLevel, false},
		{"warn", false, log.WarnLevel, false},
		{"warn", true, log.DebugLevel, false},
		{"chatty", false, 0, true},
	}
	for _, tt := range tests {
		l, err := FromConfig(tt.level, tt.verbose)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromConfig(%q) expected error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FromConfig(%q): %v", tt.level, err)
		}
		if l.GetLevel() != tt.want {
			t.Errorf("FromConfig(%q, %v) level = %v, want %v", tt.level, tt.verbose, l.GetLevel(), tt.want)
		}
	}
}
