package token

// Contextual keywords of the definition language. They are recognized by the
// parser where a keyword is allowed and are ordinary names everywhere else.
const (
	KwService = "service"
	KwMethod  = "method"
	KwData    = "data"
	KwEnum    = "enum"
	KwErrors  = "errors"
)

var keywords = map[string]struct{}{
	KwService: {},
	KwMethod:  {},
	KwData:    {},
	KwEnum:    {},
	KwErrors:  {},
}

// IsKeyword reports whether word is one of the contextual keywords.
// Keywords are case sensitive; only the lowercase spelling is recognized.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// Quote renders a literal the way expectations name it: 'text'.
func Quote(text string) string {
	return "'" + text + "'"
}
