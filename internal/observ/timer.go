package observ

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Stage is one timed step of a listing run: "config" or "walk".
type Stage struct {
	Name string
	Took time.Duration
	Note string
}

// Timer collects stages in the order they were started.
type Timer struct {
	stages []Stage
	clock  func() time.Time
}

func NewTimer() *Timer { return &Timer{clock: time.Now} }

// Start opens a stage. The returned stop func records its duration and
// note; only the first call counts.
func (t *Timer) Start(name string) (stop func(note string)) {
	idx := len(t.stages)
	t.stages = append(t.stages, Stage{Name: name})
	began := t.clock()
	done := false
	return func(note string) {
		if done {
			return
		}
		done = true
		t.stages[idx].Took = t.clock().Sub(began)
		t.stages[idx].Note = note
	}
}

// Stages returns a copy of the recorded stages.
func (t *Timer) Stages() []Stage {
	return append([]Stage(nil), t.stages...)
}

// Total sums all stage durations.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, s := range t.stages {
		total += s.Took
	}
	return total
}

// WriteTo prints the stage table followed by the total.
func (t *Timer) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, s := range t.stages {
		line := fmt.Sprintf("  %-8s %8s", s.Name, millis(s.Took))
		if s.Note != "" {
			line += "  (" + s.Note + ")"
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "  %-8s %8s\n", "total", millis(t.Total()))
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
