// Package parser is the recursive-descent grammar engine for definition
// bodies. It turns a body into a definition.ServiceInfo, or fails with a
// *diag.SyntaxFailure listing every element that would have been accepted
// at each place the parse gave up.
package parser

import (
	"strings"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/lexer"
	"fsdc/internal/remarks"
	"fsdc/internal/source"
	"fsdc/internal/token"
)

type Options struct {
	// Lexer is passed to the lexer; its Reporter sees stray characters and bad strings.
	Lexer lexer.Options
}

// Engine parses definition bodies. It holds no per-parse state and is safe
// for concurrent use.
type Engine struct {
	opts Options
}

// New creates an engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Parse parses body. Remarks sections whose names match the service or one of
// its members are attached to them. A syntax error is reported as
// *diag.SyntaxFailure; entity violations are left on the returned tree.
func (e *Engine) Parse(body source.NamedText, sections *remarks.Sections) (*definition.ServiceInfo, error) {
	file := source.NewTextFile(body)
	p := Parser{
		lx:       lexer.New(file, e.opts.Lexer),
		file:     file,
		sections: sections,
	}
	svc, ok := p.parseDefinition()
	if !ok {
		return nil, &p.failure
	}
	return svc, nil
}

// Parser хранит состояние разбора одного текста
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	sections *remarks.Sections
	failure  diag.SyntaxFailure // все несработавшие ожидания
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atKeyword(kw string) bool {
	return p.peek().Is(kw)
}

func (p *Parser) position(tok token.Token) source.Position {
	return p.file.Position(tok.Span.Start)
}

// miss записывает ожидание name в позиции следующего токена.
func (p *Parser) miss(name string) {
	p.failure.Expect(p.position(p.peek()), name)
}

// accept съедает токен вида k, иначе записывает ожидание.
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.miss(k.String())
	return token.Token{}, false
}

// acceptKeyword съедает ключевое слово kw, иначе записывает ожидание 'kw'.
func (p *Parser) acceptKeyword(kw string) (token.Token, bool) {
	if p.atKeyword(kw) {
		return p.advance(), true
	}
	p.miss(token.Quote(kw))
	return token.Token{}, false
}

// acceptName съедает слово, которое грамматика называет name ("service name" и т.п.).
func (p *Parser) acceptName(name string) (token.Token, bool) {
	if p.at(token.Ident) {
		return p.advance(), true
	}
	p.miss(name)
	return token.Token{}, false
}

// summaryOf joins the doc comments found before any of toks. Doc comments
// may sit before the attributes of an element or between them and its keyword.
func summaryOf(toks ...token.Token) string {
	parts := make([]string, 0, len(toks))
	for i, tok := range toks {
		if i > 0 && tok.Span == toks[i-1].Span {
			continue
		}
		if s := tok.Summary(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// remarksFor returns the remarks paired with an element name.
func (p *Parser) remarksFor(name string) []string {
	return p.sections.Lines(name)
}
