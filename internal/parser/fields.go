package parser

import (
	"strings"

	"fsdc/internal/definition"
	"fsdc/internal/token"
)

// parseFieldBlock parses { field* } where
//
//	field := [attrs] name : type ;
func (p *Parser) parseFieldBlock() ([]*definition.ServiceFieldInfo, bool) {
	if _, ok := p.accept(token.LBrace); !ok {
		return nil, false
	}
	var fields []*definition.ServiceFieldInfo
	for {
		first := p.peek()
		attrs, ok := p.parseAttributeLists()
		if !ok {
			return nil, false
		}
		if !p.at(token.Ident) {
			p.miss(nameField)
			if len(attrs) != 0 {
				return nil, false
			}
			break
		}
		nameTok := p.advance()
		if _, ok = p.accept(token.Colon); !ok {
			return nil, false
		}
		var typeName strings.Builder
		if !p.parseType(&typeName) {
			return nil, false
		}
		if _, ok = p.accept(token.Semicolon); !ok {
			return nil, false
		}
		f, _ := definition.TryNewServiceField(nameTok.Text, typeName.String(), definition.Info{
			Attributes: attrs,
			Summary:    summaryOf(first, nameTok),
			Position:   p.position(nameTok),
		})
		fields = append(fields, f)
	}
	if _, ok := p.accept(token.RBrace); !ok {
		return nil, false
	}
	return fields, true
}

// parseType parses name [ '<' type '>' ] ( '[' ']' )* and writes it without spaces.
func (p *Parser) parseType(out *strings.Builder) bool {
	nameTok, ok := p.acceptName(nameFieldType)
	if !ok {
		return false
	}
	out.WriteString(nameTok.Text)

	if p.at(token.Lt) {
		p.advance()
		out.WriteByte('<')
		if !p.parseType(out) {
			return false
		}
		if _, ok = p.accept(token.Gt); !ok {
			return false
		}
		out.WriteByte('>')
	} else {
		p.miss(token.Lt.String())
	}

	for p.at(token.LBracket) {
		p.advance()
		if _, ok = p.accept(token.RBracket); !ok {
			return false
		}
		out.WriteString("[]")
	}
	p.miss(token.LBracket.String())
	return true
}
