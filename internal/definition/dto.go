package definition

import "fsdc/internal/diag"

// ServiceDtoInfo is a data type ("data") with its fields.
type ServiceDtoInfo struct {
	element
	fields []*ServiceFieldInfo
}

// TryNewServiceDto builds a data type and reports its violations.
func TryNewServiceDto(name string, fields []*ServiceFieldInfo, info Info) (*ServiceDtoInfo, []*diag.DefinitionError) {
	d := &ServiceDtoInfo{element: newElement(name, info), fields: cloneSlice(fields)}
	return d, d.ownErrors()
}

// NewServiceDto builds a data type or fails with its first violation.
func NewServiceDto(name string, fields []*ServiceFieldInfo, info Info) (*ServiceDtoInfo, error) {
	d, errs := TryNewServiceDto(name, fields, info)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ServiceDtoInfo) Kind() MemberKind            { return MemberDto }
func (d *ServiceDtoInfo) Fields() []*ServiceFieldInfo { return d.fields }

func (d *ServiceDtoInfo) ownErrors() []*diag.DefinitionError {
	out := ValidateName(d.name, d.position)
	return append(out, ValidateNoDuplicateNames(d.fields, "field")...)
}

// ValidationErrors returns the violations of the data type, its attributes and its fields.
func (d *ServiceDtoInfo) ValidationErrors() []*diag.DefinitionError {
	out := d.ownErrors()
	out = append(out, d.attributeErrors()...)
	return append(out, fieldErrors(d.fields)...)
}
