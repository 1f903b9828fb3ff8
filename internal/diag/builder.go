package diag

import "fsdc/internal/source"

// New creates a DefinitionError.
func New(code Code, pos source.Position, msg string) *DefinitionError {
	return &DefinitionError{
		Code:     code,
		Message:  msg,
		Position: pos,
	}
}

// Newf creates a DefinitionError whose message is "<title>: <name>",
// the shape used by the duplicate, unused and invalid name diagnostics.
func Newf(code Code, pos source.Position, name string) *DefinitionError {
	return New(code, pos, code.Title()+": "+name)
}

// WithCause returns a copy of e that references cause.
func (e *DefinitionError) WithCause(cause error) *DefinitionError {
	out := *e
	out.Cause = cause
	return &out
}
