package trace

import (
	"fmt"
	"io"
	"sync"
)

// Recorder is a tracer that holds events until asked to write them.
type Recorder interface {
	Tracer
	// Dump writes the held events, oldest first, and reports how many.
	Dump(w io.Writer, format Format) (int, error)
}

// RingTracer keeps the most recent events of a run in memory. Nothing is
// written unless Dump is called, typically after a command has failed.
type RingTracer struct {
	mu      sync.Mutex
	events  []Event
	next    int // слот для следующего события
	wrapped bool
	dropped uint64
	level   Level
}

// NewRingTracer creates a ring holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

// Emit stores ev, overwriting the oldest event when the ring is full.
func (t *RingTracer) Emit(ev *Event) {
	if ev.Kind != KindPoint && !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.wrapped {
		t.dropped++
	}
	t.events[t.next] = *ev
	t.next++
	if t.next == len(t.events) {
		t.next = 0
		t.wrapped = true
	}
}

// Snapshot returns the held events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.wrapped {
		return append([]Event(nil), t.events[:t.next]...)
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.next:]...)
	return append(out, t.events[:t.next]...)
}

// Dropped returns how many events were overwritten.
func (t *RingTracer) Dropped() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Dump writes the held events to w. When older events were overwritten, a
// text dump starts with a line saying how many.
func (t *RingTracer) Dump(w io.Writer, format Format) (int, error) {
	events := t.Snapshot()
	if dropped := t.Dropped(); dropped > 0 && format != FormatNDJSON {
		if _, err := fmt.Fprintf(w, "# %d earlier events dropped\n", dropped); err != nil {
			return 0, err
		}
	}
	for i := range events {
		if _, err := w.Write(FormatEvent(&events[i], format)); err != nil {
			return i, err
		}
	}
	return len(events), nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
