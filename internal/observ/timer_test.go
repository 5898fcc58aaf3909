package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(tm *Timer) *time.Time {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.clock = func() time.Time { return now }
	return &now
}

func TestTimerStages(t *testing.T) {
	tm := NewTimer()
	now := fakeClock(tm)

	stop := tm.Start("config")
	*now = now.Add(2 * time.Millisecond)
	stop("")

	stop = tm.Start("walk")
	*now = now.Add(8 * time.Millisecond)
	stop("3 lines")
	*now = now.Add(time.Second)
	stop("late")

	stages := tm.Stages()
	if len(stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(stages))
	}
	if stages[0].Took != 2*time.Millisecond || stages[1].Took != 8*time.Millisecond {
		t.Fatalf("unexpected durations: %+v", stages)
	}
	if stages[1].Note != "3 lines" {
		t.Fatalf("second stop should be ignored, note = %q", stages[1].Note)
	}
	if tm.Total() != 10*time.Millisecond {
		t.Fatalf("Total() = %v, want 10ms", tm.Total())
	}

	var b strings.Builder
	if _, err := tm.WriteTo(&b); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := "timings:\n" +
		"  config     2.00ms\n" +
		"  walk       8.00ms  (3 lines)\n" +
		"  total     10.00ms\n"
	if b.String() != want {
		t.Fatalf("WriteTo wrote %q, want %q", b.String(), want)
	}
}

func TestEmptyTimer(t *testing.T) {
	tm := NewTimer()
	if tm.Total() != 0 || len(tm.Stages()) != 0 {
		t.Fatal("empty timer should have no stages")
	}
}
