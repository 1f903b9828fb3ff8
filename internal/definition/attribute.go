package definition

import (
	"slices"

	"fsdc/internal/diag"
	"fsdc/internal/ident"
	"fsdc/internal/source"
)

// ServiceAttributeParameterInfo is one "name: value" pair of an attribute.
type ServiceAttributeParameterInfo struct {
	name     string
	value    string
	position source.Position
}

// TryNewAttributeParameter builds a parameter and reports its violations.
func TryNewAttributeParameter(name, value string, pos source.Position) (*ServiceAttributeParameterInfo, []*diag.DefinitionError) {
	p := &ServiceAttributeParameterInfo{name: name, value: value, position: pos}
	return p, p.ValidationErrors()
}

// NewAttributeParameter builds a parameter or fails with its first violation.
func NewAttributeParameter(name, value string, pos source.Position) (*ServiceAttributeParameterInfo, error) {
	p, errs := TryNewAttributeParameter(name, value, pos)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ServiceAttributeParameterInfo) Name() string              { return p.name }
func (p *ServiceAttributeParameterInfo) Value() string             { return p.value }
func (p *ServiceAttributeParameterInfo) Position() source.Position { return p.position }

// ValidationErrors returns the violations of the parameter.
func (p *ServiceAttributeParameterInfo) ValidationErrors() []*diag.DefinitionError {
	return ValidateName(p.name, p.position)
}

// ServiceAttributeInfo is an attribute such as [http(method: POST)].
type ServiceAttributeInfo struct {
	name       string
	parameters []*ServiceAttributeParameterInfo
	position   source.Position
}

// TryNewAttribute builds an attribute and reports its violations.
func TryNewAttribute(name string, parameters []*ServiceAttributeParameterInfo, pos source.Position) (*ServiceAttributeInfo, []*diag.DefinitionError) {
	a := &ServiceAttributeInfo{name: name, parameters: cloneSlice(parameters), position: pos}
	return a, a.ValidationErrors()
}

// NewAttribute builds an attribute or fails with its first violation.
func NewAttribute(name string, parameters []*ServiceAttributeParameterInfo, pos source.Position) (*ServiceAttributeInfo, error) {
	a, errs := TryNewAttribute(name, parameters, pos)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *ServiceAttributeInfo) Name() string                                 { return a.name }
func (a *ServiceAttributeInfo) Parameters() []*ServiceAttributeParameterInfo { return a.parameters }
func (a *ServiceAttributeInfo) Position() source.Position                    { return a.position }

// Parameter returns the parameter with the given name (case-insensitive), or nil.
func (a *ServiceAttributeInfo) Parameter(name string) *ServiceAttributeParameterInfo {
	i := slices.IndexFunc(a.parameters, func(p *ServiceAttributeParameterInfo) bool {
		return ident.Equal(p.name, name)
	})
	if i < 0 {
		return nil
	}
	return a.parameters[i]
}

// ValidationErrors returns the violations of the attribute and its parameters.
func (a *ServiceAttributeInfo) ValidationErrors() []*diag.DefinitionError {
	out := ValidateName(a.name, a.position)
	for _, p := range a.parameters {
		out = append(out, p.ValidationErrors()...)
	}
	return append(out, ValidateNoDuplicateNames(a.parameters, "attribute parameter")...)
}
