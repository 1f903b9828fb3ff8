package fsd

import (
	"fsdc/internal/definition"
	"fsdc/internal/parser"
	"fsdc/internal/remarks"
	"fsdc/internal/source"
)

// Engine turns a definition body into a service. A syntax error is reported
// as *diag.SyntaxFailure; a *diag.DefinitionError is passed through as is.
// Implementations must be deterministic.
type Engine interface {
	Parse(body source.NamedText, sections *remarks.Sections) (*definition.ServiceInfo, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(body source.NamedText, sections *remarks.Sections) (*definition.ServiceInfo, error)

func (f EngineFunc) Parse(body source.NamedText, sections *remarks.Sections) (*definition.ServiceInfo, error) {
	return f(body, sections)
}

// DefaultEngine returns the built-in recursive-descent engine.
func DefaultEngine() Engine {
	return parser.New(parser.Options{})
}
