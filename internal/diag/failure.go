package diag

import (
	"fmt"

	"fsdc/internal/source"
)

// Expectation is one candidate failure of a grammar: at Position the named
// element would have been accepted.
type Expectation struct {
	Position source.Position
	Name     string
}

// SyntaxFailure is returned by a grammar engine that could not parse its input.
// Several expectations may share a position when alternatives were tried there.
type SyntaxFailure struct {
	Expectations []Expectation
}

func (f *SyntaxFailure) Error() string {
	return fmt.Sprintf("syntax error (%d candidate failures)", len(f.Expectations))
}

// Expect records a candidate failure.
func (f *SyntaxFailure) Expect(pos source.Position, name string) {
	f.Expectations = append(f.Expectations, Expectation{Position: pos, Name: name})
}
