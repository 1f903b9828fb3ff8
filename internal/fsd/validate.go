package fsd

import (
	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/ident"
	"fsdc/internal/remarks"
)

// Validate returns the violations found in svc followed by one
// "Unused remarks heading" error per section that names neither the service
// nor any of its members. Names are compared ignoring case, the same way
// sections are paired with elements.
func Validate(svc *definition.ServiceInfo, sections *remarks.Sections) []*diag.DefinitionError {
	errs := svc.ValidationErrors()
	for _, sec := range sections.All() {
		if ident.Equal(sec.Name, svc.Name()) || svc.FindMember(sec.Name) != nil {
			continue
		}
		errs = append(errs, diag.Newf(diag.RmkUnusedHeading, sec.Position, sec.Name))
	}
	return errs
}
