package trace

import (
	"errors"
	"io"
)

// MultiTracer sends every event to each of its tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer combines tracers under one level.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit gives each tracer its own copy; tracers stamp sequence numbers.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// FindRecorder returns the recorder in t, looking inside a MultiTracer.
func FindRecorder(t Tracer) (Recorder, bool) {
	switch tr := t.(type) {
	case Recorder:
		return tr, true
	case *MultiTracer:
		for _, inner := range tr.tracers {
			if rec, ok := FindRecorder(inner); ok {
				return rec, true
			}
		}
	}
	return nil, false
}

// DumpRecorded writes the events held by the recorder in t, if any, and
// reports how many were written.
func DumpRecorded(t Tracer, w io.Writer, format Format) (int, error) {
	rec, ok := FindRecorder(t)
	if !ok {
		return 0, nil
	}
	return rec.Dump(w, format)
}
