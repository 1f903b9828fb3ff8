package token

import (
	"strings"

	"fsdc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Is reports whether the token is the keyword kw.
func (t Token) Is(kw string) bool {
	return t.Kind == Ident && t.Text == kw
}

// IsIdent reports whether the token is a word.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsLiteral reports whether the token can serve as an attribute parameter value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Ident, Number, StringLit:
		return true
	default:
		return false
	}
}

// DocLines returns the text of the "///" comments attached to the token,
// without the slashes and trimmed.
func (t Token) DocLines() []string {
	var out []string
	for _, tv := range t.Leading {
		if tv.Kind != TriviaDocLine {
			continue
		}
		out = append(out, strings.TrimSpace(strings.TrimPrefix(tv.Text, "///")))
	}
	return out
}

// Summary joins the doc lines of the token with single spaces.
func (t Token) Summary() string {
	lines := t.DocLines()
	parts := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}
