package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // command spans only
	LevelPhase               // commands and parse passes
	LevelDetail              // plus one span per definition file
	LevelDebug               // plus point events such as cache hits
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == want {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether spans of scope are recorded at this level.
// Passes nest inside file spans but are cheaper to show: at phase level a
// run prints one command span and the extract/grammar/validate passes.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelError:
		return scope == ScopeDriver
	case LevelPhase:
		return scope <= ScopePass
	case LevelDetail, LevelDebug:
		return scope <= ScopeModule
	}
	return false
}

// EmitsPoints reports whether instant events are recorded.
func (l Level) EmitsPoints() bool {
	return l >= LevelDebug
}
