// Package definition is the model of a parsed service definition.
//
// Every entity is immutable once built and has two construction paths:
// TryNew* returns the entity together with all of its invariant violations,
// New* returns the first violation as an error instead. The parser uses the
// first path so that one parse can report many problems; code that builds a
// model by hand uses the second.
package definition
