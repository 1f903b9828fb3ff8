package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "2 lines")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "load" || r.Phases[0].Note != "2 lines" {
		t.Fatalf("unexpected report: %+v", r)
	}
	if r.TotalMS < 0 {
		t.Fatalf("negative total: %v", r.TotalMS)
	}
}

func TestEmptyTimer(t *testing.T) {
	var tm *Timer
	if r := tm.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("nil timer report: %+v", r)
	}
}

func TestAggregate(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "load", DurationMS: 1}, {Name: "parse", DurationMS: 2, Note: "x"}}}
	b := Report{TotalMS: 4, Phases: []PhaseReport{{Name: "parse", DurationMS: 3}, {Name: "cache", DurationMS: 1}}}

	got := Aggregate(a, b)
	if got.TotalMS != 7 {
		t.Fatalf("total = %v, want 7", got.TotalMS)
	}
	want := []PhaseReport{{Name: "load", DurationMS: 1}, {Name: "parse", DurationMS: 5}, {Name: "cache", DurationMS: 1}}
	if len(got.Phases) != len(want) {
		t.Fatalf("phases = %+v", got.Phases)
	}
	for i := range want {
		if got.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, got.Phases[i], want[i])
		}
	}
}

func TestSummary(t *testing.T) {
	r := Report{TotalMS: 1.5, Phases: []PhaseReport{{Name: "parse", DurationMS: 1.5, Note: "ok"}}}
	s := r.Summary()
	for _, part := range []string{"timings:", "parse", "1.50 ms", "// ok", "total"} {
		if !strings.Contains(s, part) {
			t.Errorf("summary lacks %q:\n%s", part, s)
		}
	}
}
