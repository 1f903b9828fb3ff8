// Package ident holds the naming rules shared by the definition model,
// the remarks extractor and the validator.
package ident

import (
	"golang.org/x/text/cases"
)

// IsValid reports whether name is an identifier: an ASCII letter or '_'
// followed by ASCII letters, digits or '_'.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Fold returns the case-folded key of name. Names that fold to the same key
// are considered equal wherever the definition language is case-insensitive.
func Fold(name string) string {
	// cases.Caser is stateful, so each call gets its own.
	return cases.Fold().String(name)
}

// Equal reports whether two names are equal ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
