package diagfmt

import (
	"encoding/json"
	"io"

	"fsdc/internal/definition"
	"fsdc/internal/source"
)

// PositionJSON is a 1-based line and column.
type PositionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// AttributeJSON describes an attribute and its parameters in order.
type AttributeJSON struct {
	Name       string          `json:"name"`
	Parameters []ParameterJSON `json:"parameters,omitempty"`
}

// ParameterJSON is one name: value pair of an attribute.
type ParameterJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ElementJSON holds what every named element has.
type ElementJSON struct {
	Name       string          `json:"name"`
	Attributes []AttributeJSON `json:"attributes,omitempty"`
	Summary    string          `json:"summary,omitempty"`
	Remarks    []string        `json:"remarks,omitempty"`
	Position   PositionJSON    `json:"position"`
}

// FieldJSON is a field of a method or a data type.
type FieldJSON struct {
	ElementJSON
	Type string `json:"type"`
}

// MemberJSON is a service member. Only the lists of its kind are set.
type MemberJSON struct {
	Kind string `json:"kind"`
	ElementJSON
	Request  []FieldJSON   `json:"request,omitempty"`
	Response []FieldJSON   `json:"response,omitempty"`
	Fields   []FieldJSON   `json:"fields,omitempty"`
	Values   []ElementJSON `json:"values,omitempty"`
}

// ServiceJSON is the JSON form of a parsed definition.
type ServiceJSON struct {
	ElementJSON
	Members []MemberJSON `json:"members"`
}

type namedElement interface {
	Name() string
	Attributes() []*definition.ServiceAttributeInfo
	Summary() string
	Remarks() []string
	Position() source.Position
}

func elementJSON(e namedElement) ElementJSON {
	out := ElementJSON{
		Name:     e.Name(),
		Summary:  e.Summary(),
		Remarks:  e.Remarks(),
		Position: PositionJSON{Line: e.Position().Line, Column: e.Position().Column},
	}
	for _, a := range e.Attributes() {
		aj := AttributeJSON{Name: a.Name()}
		for _, p := range a.Parameters() {
			aj.Parameters = append(aj.Parameters, ParameterJSON{Name: p.Name(), Value: p.Value()})
		}
		out.Attributes = append(out.Attributes, aj)
	}
	return out
}

func fieldsJSON(fields []*definition.ServiceFieldInfo) []FieldJSON {
	out := make([]FieldJSON, len(fields))
	for i, f := range fields {
		out[i] = FieldJSON{ElementJSON: elementJSON(f), Type: f.TypeName()}
	}
	return out
}

// BuildServiceJSON converts a service into its JSON form.
func BuildServiceJSON(svc *definition.ServiceInfo) ServiceJSON {
	out := ServiceJSON{ElementJSON: elementJSON(svc), Members: make([]MemberJSON, 0, len(svc.Members()))}
	for _, member := range svc.Members() {
		mj := MemberJSON{Kind: member.Kind().Keyword(), ElementJSON: elementJSON(member)}
		switch m := member.(type) {
		case *definition.ServiceMethodInfo:
			mj.Request = fieldsJSON(m.RequestFields())
			mj.Response = fieldsJSON(m.ResponseFields())
		case *definition.ServiceDtoInfo:
			mj.Fields = fieldsJSON(m.Fields())
		case *definition.ServiceEnumInfo:
			for _, v := range m.Values() {
				mj.Values = append(mj.Values, elementJSON(v))
			}
		case *definition.ServiceErrorSetInfo:
			for _, e := range m.Errors() {
				mj.Values = append(mj.Values, elementJSON(e))
			}
		}
		out.Members = append(out.Members, mj)
	}
	return out
}

// Model writes svc as indented JSON.
func Model(w io.Writer, svc *definition.ServiceInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildServiceJSON(svc))
}
