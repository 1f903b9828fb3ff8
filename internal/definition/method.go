package definition

import "fsdc/internal/diag"

// ServiceMethodInfo is a service method with its request and response fields.
type ServiceMethodInfo struct {
	element
	requestFields  []*ServiceFieldInfo
	responseFields []*ServiceFieldInfo
}

// TryNewServiceMethod builds a method and returns it with all of its violations:
// an invalid name, duplicate request field names and duplicate response field names.
func TryNewServiceMethod(name string, requestFields, responseFields []*ServiceFieldInfo, info Info) (*ServiceMethodInfo, []*diag.DefinitionError) {
	m := &ServiceMethodInfo{
		element:        newElement(name, info),
		requestFields:  cloneSlice(requestFields),
		responseFields: cloneSlice(responseFields),
	}
	return m, m.ownErrors()
}

// NewServiceMethod builds a method or fails with its first violation.
func NewServiceMethod(name string, requestFields, responseFields []*ServiceFieldInfo, info Info) (*ServiceMethodInfo, error) {
	m, errs := TryNewServiceMethod(name, requestFields, responseFields, info)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ServiceMethodInfo) Kind() MemberKind                    { return MemberMethod }
func (m *ServiceMethodInfo) RequestFields() []*ServiceFieldInfo  { return m.requestFields }
func (m *ServiceMethodInfo) ResponseFields() []*ServiceFieldInfo { return m.responseFields }

func (m *ServiceMethodInfo) ownErrors() []*diag.DefinitionError {
	out := ValidateName(m.name, m.position)
	out = append(out, ValidateNoDuplicateNames(m.requestFields, "request field")...)
	return append(out, ValidateNoDuplicateNames(m.responseFields, "response field")...)
}

// ValidationErrors returns the violations of the method, its attributes and its fields.
func (m *ServiceMethodInfo) ValidationErrors() []*diag.DefinitionError {
	out := m.ownErrors()
	out = append(out, m.attributeErrors()...)
	out = append(out, fieldErrors(m.requestFields)...)
	return append(out, fieldErrors(m.responseFields)...)
}
