// Package fsd reads service definitions.
//
// A parse runs in three steps: remarks sections are split off the text,
// the grammar engine parses the remaining body, and the resulting service is
// validated. TryParseDefinition returns every problem found; ParseDefinition
// returns the first one as an error.
package fsd
