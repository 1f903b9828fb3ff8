package definition

import (
	"fsdc/internal/diag"
	"fsdc/internal/source"
)

// MemberKind tells the members of a service apart.
type MemberKind uint8

const (
	MemberMethod MemberKind = iota
	MemberDto
	MemberEnum
	MemberErrorSet
)

// Keyword returns the keyword that introduces the member kind.
func (k MemberKind) Keyword() string {
	switch k {
	case MemberMethod:
		return "method"
	case MemberDto:
		return "data"
	case MemberEnum:
		return "enum"
	case MemberErrorSet:
		return "errors"
	default:
		return "?"
	}
}

// ServiceMemberInfo is a member of a service: a method, a data type, an enum or an error set.
type ServiceMemberInfo interface {
	Name() string
	Kind() MemberKind
	Attributes() []*ServiceAttributeInfo
	Summary() string
	Remarks() []string
	Position() source.Position
	// ValidationErrors returns the violations of the member and everything it contains.
	ValidationErrors() []*diag.DefinitionError
}
