package definition

import (
	"fsdc/internal/diag"
	"fsdc/internal/ident"
	"fsdc/internal/source"
)

// ValidateName reports "Invalid name: <name>" when name is not an identifier.
func ValidateName(name string, pos source.Position) []*diag.DefinitionError {
	if ident.IsValid(name) {
		return nil
	}
	return []*diag.DefinitionError{diag.Newf(diag.DefInvalidName, pos, name)}
}

type named interface {
	Name() string
	Position() source.Position
}

// ValidateNoDuplicateNames reports every element whose name repeats an earlier
// one, ignoring case, as "Duplicate <description>: <name>" at its own position.
func ValidateNoDuplicateNames[T named](items []T, description string) []*diag.DefinitionError {
	if len(items) < 2 {
		return nil
	}
	var out []*diag.DefinitionError
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := ident.Fold(item.Name())
		if _, dup := seen[key]; dup {
			out = append(out, diag.New(diag.DefDuplicateName, item.Position(),
				"Duplicate "+description+": "+item.Name()))
			continue
		}
		seen[key] = struct{}{}
	}
	return out
}
