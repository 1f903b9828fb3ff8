package lexer_test

import (
	"testing"

	"fsdc/internal/lexer"
	"fsdc/internal/source"
	"fsdc/internal/token"
)

// testReporter собирает все сообщения, полученные от лексера
type testReporter struct {
	kinds []string
}

func (r *testReporter) Report(kind string, _ source.Span, _ string) {
	r.kinds = append(r.kinds, kind)
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fsd", []byte(input))
	reporter := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}), reporter
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input)
	toks := lx.All()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: expected %v, got %v", input, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d: expected %v, got %v", input, i, want[i], got[i])
		}
	}
	return toks
}

func TestServiceHeader(t *testing.T) {
	toks := expectKinds(t, "service TestApi{}",
		token.Ident, token.Ident, token.LBrace, token.RBrace, token.EOF)
	if !toks[0].Is(token.KwService) {
		t.Errorf("expected service keyword, got %q", toks[0].Text)
	}
	if toks[1].Text != "TestApi" {
		t.Errorf("unexpected name %q", toks[1].Text)
	}
	if toks[4].Span.Start != 17 {
		t.Errorf("expected EOF at 17, got %d", toks[4].Span.Start)
	}
}

func TestPunctuation(t *testing.T) {
	expectKinds(t, "[](){}<>:;,",
		token.LBracket, token.RBracket, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.Lt, token.Gt,
		token.Colon, token.Semicolon, token.Comma, token.EOF)
}

func TestFieldWithGenericArrayType(t *testing.T) {
	toks := expectKinds(t, "items: map<string[]>[];",
		token.Ident, token.Colon, token.Ident, token.Lt, token.Ident,
		token.LBracket, token.RBracket, token.Gt, token.LBracket, token.RBracket,
		token.Semicolon, token.EOF)
	if toks[2].Text != "map" {
		t.Errorf("expected map, got %q", toks[2].Text)
	}
}

func TestAttributeValues(t *testing.T) {
	toks := expectKinds(t, `[http(method: POST, code: 202, path: "/w/{id}", n: -1.5)]`,
		token.LBracket, token.Ident, token.LParen,
		token.Ident, token.Colon, token.Ident, token.Comma,
		token.Ident, token.Colon, token.Number, token.Comma,
		token.Ident, token.Colon, token.StringLit, token.Comma,
		token.Ident, token.Colon, token.Number,
		token.RParen, token.RBracket, token.EOF)
	if toks[13].Text != `"/w/{id}"` {
		t.Errorf("unexpected string text %q", toks[13].Text)
	}
	if toks[17].Text != "-1.5" {
		t.Errorf("unexpected number text %q", toks[17].Text)
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	toks := expectKinds(t, "/// test\n// note\n/// summary\nservice X{}",
		token.Ident, token.Ident, token.LBrace, token.RBrace, token.EOF)
	if got := toks[0].Summary(); got != "test summary" {
		t.Errorf("unexpected summary %q", got)
	}
	var docs, comments int
	for _, tv := range toks[0].Leading {
		switch tv.Kind {
		case token.TriviaDocLine:
			docs++
		case token.TriviaLineComment:
			comments++
		}
	}
	if docs != 2 || comments != 1 {
		t.Errorf("expected 2 doc lines and 1 comment, got %d and %d", docs, comments)
	}
}

func TestFourSlashesIsPlainComment(t *testing.T) {
	toks := expectKinds(t, "//// banner\nx", token.Ident, token.EOF)
	if len(toks[0].DocLines()) != 0 {
		t.Errorf("expected no doc lines, got %v", toks[0].DocLines())
	}
}

func TestEOFAfterTrailingTrivia(t *testing.T) {
	toks := expectKinds(t, " \n\t ", token.EOF)
	if toks[0].Span.Start != 4 {
		t.Errorf("expected EOF offset 4, got %d", toks[0].Span.Start)
	}
}

func TestInvalidTokens(t *testing.T) {
	tests := []struct {
		input string
		kind  string
	}{
		{"@", "unexpected-char"},
		{`"open`, "unterminated-string"},
		{"\"a\nb\"", "unterminated-string"},
		{`"\q"`, "bad-escape"},
		{"§", "unexpected-char"},
	}
	for _, tt := range tests {
		lx, rep := makeTestLexer(tt.input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("%q: expected Invalid, got %v", tt.input, tok.Kind)
		}
		if len(rep.kinds) == 0 || rep.kinds[0] != tt.kind {
			t.Errorf("%q: expected report %q, got %v", tt.input, tt.kind, rep.kinds)
		}
	}
}

func TestUnicodeWord(t *testing.T) {
	toks := expectKinds(t, "имя x", token.Ident, token.Ident, token.EOF)
	if toks[0].Text != "имя" {
		t.Errorf("unexpected word %q", toks[0].Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("expected peek a, got %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("expected next a, got %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("expected next b, got %q", n.Text)
	}
}

func TestUnquoteAndQuote(t *testing.T) {
	tests := []struct {
		lit  string
		want string
	}{
		{`"plain"`, "plain"},
		{`"a\"b"`, `a"b`},
		{`"\\\/\n\t"`, "\\/\n\t"},
		{`"A"`, "A"},
	}
	for _, tt := range tests {
		got, err := lexer.Unquote(tt.lit)
		if err != nil {
			t.Fatalf("Unquote(%s): %v", tt.lit, err)
		}
		if got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.lit, got, tt.want)
		}
		back, err := lexer.Unquote(lexer.Quote(got))
		if err != nil || back != got {
			t.Errorf("Quote round trip of %q failed: %q, %v", got, back, err)
		}
	}
	if _, err := lexer.Unquote(`"\u12"`); err == nil {
		t.Error("expected short unicode escape to fail")
	}
}
