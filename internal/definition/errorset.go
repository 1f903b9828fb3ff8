package definition

import "fsdc/internal/diag"

// ServiceErrorInfo is one error of an error set.
type ServiceErrorInfo struct {
	element
}

// TryNewServiceError builds an error and reports its violations.
func TryNewServiceError(name string, info Info) (*ServiceErrorInfo, []*diag.DefinitionError) {
	e := &ServiceErrorInfo{element: newElement(name, info)}
	return e, ValidateName(e.name, e.position)
}

// ServiceErrorSetInfo is a named set of errors ("errors").
type ServiceErrorSetInfo struct {
	element
	errors []*ServiceErrorInfo
}

// TryNewServiceErrorSet builds an error set and reports its violations.
func TryNewServiceErrorSet(name string, errors []*ServiceErrorInfo, info Info) (*ServiceErrorSetInfo, []*diag.DefinitionError) {
	s := &ServiceErrorSetInfo{element: newElement(name, info), errors: cloneSlice(errors)}
	return s, s.ownErrors()
}

// NewServiceErrorSet builds an error set or fails with its first violation.
func NewServiceErrorSet(name string, errors []*ServiceErrorInfo, info Info) (*ServiceErrorSetInfo, error) {
	s, errs := TryNewServiceErrorSet(name, errors, info)
	if err := firstError(errs); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ServiceErrorSetInfo) Kind() MemberKind            { return MemberErrorSet }
func (s *ServiceErrorSetInfo) Errors() []*ServiceErrorInfo { return s.errors }

func (s *ServiceErrorSetInfo) ownErrors() []*diag.DefinitionError {
	out := ValidateName(s.name, s.position)
	return append(out, ValidateNoDuplicateNames(s.errors, "error")...)
}

// ValidationErrors returns the violations of the error set, its attributes and its errors.
func (s *ServiceErrorSetInfo) ValidationErrors() []*diag.DefinitionError {
	out := s.ownErrors()
	out = append(out, s.attributeErrors()...)
	for _, e := range s.errors {
		out = append(out, ValidateName(e.name, e.position)...)
		out = append(out, e.attributeErrors()...)
	}
	return out
}
