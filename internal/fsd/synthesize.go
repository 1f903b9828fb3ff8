package fsd

import (
	"slices"
	"strings"

	"fsdc/internal/diag"
	"fsdc/internal/source"
)

// Synthesize reduces the candidate failures of a syntax error to one
// diagnostic: the names expected at the furthest position, closing
// punctuation first, then in byte order, as "expected a or b".
func Synthesize(f *diag.SyntaxFailure) *diag.DefinitionError {
	if f == nil {
		return diag.New(diag.SynInvalidDefinition, source.Position{}, "invalid definition")
	}
	if len(f.Expectations) == 0 {
		return diag.New(diag.SynInvalidDefinition, source.Position{}, "invalid definition").WithCause(f)
	}

	best := f.Expectations[0].Position
	for _, e := range f.Expectations[1:] {
		if e.Position.Compare(best) > 0 {
			best = e.Position
		}
	}

	names := make([]string, 0, 4)
	for _, e := range f.Expectations {
		if e.Position == best && !slices.Contains(names, e.Name) {
			names = append(names, e.Name)
		}
	}
	slices.SortFunc(names, func(a, b string) int {
		if ra, rb := expectationRank(a), expectationRank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})

	return diag.New(diag.SynExpected, best, "expected "+strings.Join(names, " or ")).WithCause(f)
}

func expectationRank(name string) int {
	switch name {
	case "')'", "']'", "'}'", "';'":
		return 1
	default:
		return 2
	}
}
