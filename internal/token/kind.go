package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (stray character, unterminated string).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a word: letters, digits and underscores.
	// Keywords are contextual and are lexed as Ident too.
	Ident
	// Number represents a word that starts with a digit or a minus sign.
	Number
	// StringLit represents a double-quoted string.
	StringLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Number:    "Number",
	StringLit: "StringLit",
	LParen:    "'('",
	RParen:    "')'",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LBracket:  "'['",
	RBracket:  "']'",
	Lt:        "'<'",
	Gt:        "'>'",
	Colon:     "':'",
	Semicolon: "';'",
	Comma:     "','",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsPunct reports whether the kind is a single-character punctuation token.
func (k Kind) IsPunct() bool {
	return k >= LParen && k <= Comma
}
