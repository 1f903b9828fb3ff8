package definition

import "fsdc/internal/diag"

// ServiceFieldInfo is a field of a method request or response, or of a data type.
type ServiceFieldInfo struct {
	element
	typeName string
}

// TryNewServiceField builds a field and reports its violations.
// The type name is kept as written; unknown types are not an error here.
func TryNewServiceField(name, typeName string, info Info) (*ServiceFieldInfo, []*diag.DefinitionError) {
	f := &ServiceFieldInfo{element: newElement(name, info), typeName: typeName}
	return f, f.ValidationErrors()
}

// NewServiceField builds a field or fails with its first violation.
func NewServiceField(name, typeName string, info Info) (*ServiceFieldInfo, error) {
	f, errs := TryNewServiceField(name, typeName, info)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return f, nil
}

// TypeName returns the field type as written, e.g. "result<Widget>[]".
func (f *ServiceFieldInfo) TypeName() string { return f.typeName }

// ValidationErrors returns the violations of the field itself.
func (f *ServiceFieldInfo) ValidationErrors() []*diag.DefinitionError {
	return ValidateName(f.name, f.position)
}

func fieldErrors(fields []*ServiceFieldInfo) []*diag.DefinitionError {
	var out []*diag.DefinitionError
	for _, f := range fields {
		out = append(out, f.ValidationErrors()...)
		out = append(out, f.attributeErrors()...)
	}
	return out
}
