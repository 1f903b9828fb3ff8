package definition

import (
	"fsdc/internal/diag"
	"fsdc/internal/ident"
)

// ServiceInfo is the root of a definition.
type ServiceInfo struct {
	element
	members []ServiceMemberInfo
}

// TryNewService builds a service and reports the violations of the service
// itself: an invalid name and duplicate member names. Violations inside the
// members are reported by ValidationErrors.
func TryNewService(name string, members []ServiceMemberInfo, info Info) (*ServiceInfo, []*diag.DefinitionError) {
	s := &ServiceInfo{element: newElement(name, info), members: cloneSlice(members)}
	return s, s.ownErrors()
}

// NewService builds a service or fails with the first violation found anywhere in it.
func NewService(name string, members []ServiceMemberInfo, info Info) (*ServiceInfo, error) {
	s, _ := TryNewService(name, members, info)
	if err := firstError(s.ValidationErrors()); err != nil {
		return nil, err
	}
	return s, nil
}

// Members returns the members in declaration order.
func (s *ServiceInfo) Members() []ServiceMemberInfo { return s.members }

// FindMember returns the member with the given name (case-insensitive), or nil.
func (s *ServiceInfo) FindMember(name string) ServiceMemberInfo {
	key := ident.Fold(name)
	for _, m := range s.members {
		if ident.Fold(m.Name()) == key {
			return m
		}
	}
	return nil
}

// Methods returns the methods in declaration order.
func (s *ServiceInfo) Methods() []*ServiceMethodInfo { return membersOf[*ServiceMethodInfo](s.members) }

// Dtos returns the data types in declaration order.
func (s *ServiceInfo) Dtos() []*ServiceDtoInfo { return membersOf[*ServiceDtoInfo](s.members) }

// Enums returns the enums in declaration order.
func (s *ServiceInfo) Enums() []*ServiceEnumInfo { return membersOf[*ServiceEnumInfo](s.members) }

// ErrorSets returns the error sets in declaration order.
func (s *ServiceInfo) ErrorSets() []*ServiceErrorSetInfo {
	return membersOf[*ServiceErrorSetInfo](s.members)
}

func membersOf[T ServiceMemberInfo](members []ServiceMemberInfo) []T {
	var out []T
	for _, m := range members {
		if t, ok := m.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func (s *ServiceInfo) ownErrors() []*diag.DefinitionError {
	out := ValidateName(s.name, s.position)
	return append(out, ValidateNoDuplicateNames(s.members, "service member")...)
}

// ValidationErrors returns every violation in the definition: the service name,
// the service attributes, duplicate member names, then each member in order.
func (s *ServiceInfo) ValidationErrors() []*diag.DefinitionError {
	out := ValidateName(s.name, s.position)
	out = append(out, s.attributeErrors()...)
	out = append(out, ValidateNoDuplicateNames(s.members, "service member")...)
	for _, m := range s.members {
		out = append(out, m.ValidationErrors()...)
	}
	return out
}
