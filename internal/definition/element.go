package definition

import (
	"fsdc/internal/diag"
	"fsdc/internal/ident"
	"fsdc/internal/source"
)

// Info carries the parts shared by every named element of a definition.
// The zero value is valid: no attributes, empty summary, no remarks, no position.
type Info struct {
	Attributes []*ServiceAttributeInfo
	Summary    string
	Remarks    []string
	Position   source.Position
}

type element struct {
	name       string
	attributes []*ServiceAttributeInfo
	summary    string
	remarks    []string
	position   source.Position
}

func newElement(name string, info Info) element {
	return element{
		name:       name,
		attributes: cloneSlice(info.Attributes),
		summary:    info.Summary,
		remarks:    cloneSlice(info.Remarks),
		position:   info.Position,
	}
}

// Name returns the element name as written.
func (e *element) Name() string { return e.name }

// Attributes returns the attributes in declaration order.
func (e *element) Attributes() []*ServiceAttributeInfo { return e.attributes }

// Summary returns the text of the doc comments, or "".
func (e *element) Summary() string { return e.summary }

// Remarks returns the lines of the paired remarks section.
func (e *element) Remarks() []string { return e.remarks }

// Position returns where the element is named in the source, if known.
func (e *element) Position() source.Position { return e.position }

// Attribute returns the first attribute with the given name (case-insensitive).
func (e *element) Attribute(name string) *ServiceAttributeInfo {
	for _, a := range e.attributes {
		if ident.Equal(a.name, name) {
			return a
		}
	}
	return nil
}

// AttributesNamed returns every attribute with the given name (case-insensitive).
func (e *element) AttributesNamed(name string) []*ServiceAttributeInfo {
	var out []*ServiceAttributeInfo
	for _, a := range e.attributes {
		if ident.Equal(a.name, name) {
			out = append(out, a)
		}
	}
	return out
}

// attributeErrors collects the errors of every attribute of the element.
func (e *element) attributeErrors() []*diag.DefinitionError {
	var out []*diag.DefinitionError
	for _, a := range e.attributes {
		out = append(out, a.ValidationErrors()...)
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// firstError turns a violation list into the error of the strict construction path.
func firstError(errs []*diag.DefinitionError) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
