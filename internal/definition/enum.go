package definition

import "fsdc/internal/diag"

// ServiceEnumValueInfo is one value of an enum.
type ServiceEnumValueInfo struct {
	element
}

// TryNewServiceEnumValue builds an enum value and reports its violations.
func TryNewServiceEnumValue(name string, info Info) (*ServiceEnumValueInfo, []*diag.DefinitionError) {
	v := &ServiceEnumValueInfo{element: newElement(name, info)}
	return v, ValidateName(v.name, v.position)
}

// ServiceEnumInfo is an enumerated type.
type ServiceEnumInfo struct {
	element
	values []*ServiceEnumValueInfo
}

// TryNewServiceEnum builds an enum and reports its violations.
func TryNewServiceEnum(name string, values []*ServiceEnumValueInfo, info Info) (*ServiceEnumInfo, []*diag.DefinitionError) {
	e := &ServiceEnumInfo{element: newElement(name, info), values: cloneSlice(values)}
	return e, e.ownErrors()
}

// NewServiceEnum builds an enum or fails with its first violation.
func NewServiceEnum(name string, values []*ServiceEnumValueInfo, info Info) (*ServiceEnumInfo, error) {
	e, errs := TryNewServiceEnum(name, values, info)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *ServiceEnumInfo) Kind() MemberKind                { return MemberEnum }
func (e *ServiceEnumInfo) Values() []*ServiceEnumValueInfo { return e.values }

func (e *ServiceEnumInfo) ownErrors() []*diag.DefinitionError {
	out := ValidateName(e.name, e.position)
	return append(out, ValidateNoDuplicateNames(e.values, "enum value")...)
}

// ValidationErrors returns the violations of the enum, its attributes and its values.
func (e *ServiceEnumInfo) ValidationErrors() []*diag.DefinitionError {
	out := e.ownErrors()
	out = append(out, e.attributeErrors()...)
	for _, v := range e.values {
		out = append(out, ValidateName(v.name, v.position)...)
		out = append(out, v.attributeErrors()...)
	}
	return out
}
