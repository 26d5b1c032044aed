package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type recorder struct {
	starts   []int
	updates  int
	finishes int
}

func (r *recorder) Start(total int)    { r.starts = append(r.starts, total) }
func (r *recorder) Update(int, string) { r.updates++ }
func (r *recorder) Finish()            { r.finishes++ }

func TestDocumentsStartsOnce(t *testing.T) {
	rec := &recorder{}
	p := Documents(rec)

	var wg sync.WaitGroup
	for i := 1; i <= 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p.Update(n, 5, "doc.md")
		}(i)
	}
	wg.Wait()
	p.Finish()

	if len(rec.starts) != 1 || rec.starts[0] != 5 {
		t.Errorf("starts = %v, want [5]", rec.starts)
	}
	if rec.updates < 1 || rec.updates > 5 {
		t.Errorf("updates = %d, want between 1 and 5", rec.updates)
	}
	if rec.finishes != 1 {
		t.Errorf("finishes = %d, want 1", rec.finishes)
	}
}

func TestDocumentsFinishesWhenLoadStopsEarly(t *testing.T) {
	rec := &recorder{}
	p := Documents(rec)

	// Two of five documents report before the load is cancelled.
	p.Update(1, 5, "a.md")
	p.Update(2, 5, "b.md")
	p.Finish()
	p.Finish()

	if rec.finishes != 1 {
		t.Errorf("finishes = %d, want 1", rec.finishes)
	}
}

func TestDocumentsDropsLateUpdates(t *testing.T) {
	rec := &recorder{}
	p := Documents(rec)

	p.Update(2, 2, "b.md")
	p.Update(1, 2, "a.md")
	p.Finish()
	p.Update(2, 2, "b.md")

	if rec.updates != 1 {
		t.Errorf("updates = %d, want 1", rec.updates)
	}
	if rec.finishes != 1 {
		t.Errorf("finishes = %d, want 1", rec.finishes)
	}
}

func TestDocumentsFinishWithoutUpdates(t *testing.T) {
	rec := &recorder{}
	Documents(rec).Finish()
	if len(rec.starts) != 0 || rec.finishes != 0 {
		t.Errorf("starts=%v finishes=%d, want no calls", rec.starts, rec.finishes)
	}
}

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "a.md")
	r.Update(2, "b.md")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Loading 2 documents", "[1/2] a.md", "[2/2] b.md", "Documents loaded"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
