package diag

import (
	"fmt"

	"fsdc/internal/source"
)

// DefinitionError is a single problem found in a definition: a duplicate
// remarks heading, a syntax error or a validation failure.
type DefinitionError struct {
	Code     Code
	Message  string
	Position source.Position
	Cause    error
}

// Error renders the diagnostic as "name(line,column): message".
// Errors without a position render the bare message.
func (e *DefinitionError) Error() string {
	if !e.Position.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

// Unwrap exposes the underlying failure, if any.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}
