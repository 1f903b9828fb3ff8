package parser

import (
	"fsdc/internal/definition"
	"fsdc/internal/lexer"
	"fsdc/internal/token"
)

// parseAttributeLists parses any number of [a, b(x: 1)] lists. When no list
// starts here it records that '[' was possible.
func (p *Parser) parseAttributeLists() ([]*definition.ServiceAttributeInfo, bool) {
	var attrs []*definition.ServiceAttributeInfo
	for p.at(token.LBracket) {
		p.advance()
		for {
			attr, ok := p.parseAttribute()
			if !ok {
				return nil, false
			}
			attrs = append(attrs, attr)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			p.miss(token.Comma.String())
			break
		}
		if _, ok := p.accept(token.RBracket); !ok {
			return nil, false
		}
	}
	p.miss(token.LBracket.String())
	return attrs, true
}

// parseAttribute parses name [ '(' param (',' param)* ')' ].
func (p *Parser) parseAttribute() (*definition.ServiceAttributeInfo, bool) {
	nameTok, ok := p.acceptName(nameAttribute)
	if !ok {
		return nil, false
	}
	var params []*definition.ServiceAttributeParameterInfo
	if p.at(token.LParen) {
		p.advance()
		for {
			param, ok := p.parseParameter()
			if !ok {
				return nil, false
			}
			params = append(params, param)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			p.miss(token.Comma.String())
			break
		}
		if _, ok := p.accept(token.RParen); !ok {
			return nil, false
		}
	} else {
		p.miss(token.LParen.String())
	}
	attr, _ := definition.TryNewAttribute(nameTok.Text, params, p.position(nameTok))
	return attr, true
}

// parseParameter parses name ':' value, where value is a word, a number or a string.
func (p *Parser) parseParameter() (*definition.ServiceAttributeParameterInfo, bool) {
	nameTok, ok := p.acceptName(nameParameter)
	if !ok {
		return nil, false
	}
	if _, ok = p.accept(token.Colon); !ok {
		return nil, false
	}
	valueTok := p.peek()
	if !valueTok.IsLiteral() {
		p.miss(nameParameterValue)
		return nil, false
	}
	p.advance()
	value := valueTok.Text
	if valueTok.Kind == token.StringLit {
		var err error
		if value, err = lexer.Unquote(valueTok.Text); err != nil {
			// лексер уже проверил escape-последовательности
			value = valueTok.Text
		}
	}
	param, _ := definition.TryNewAttributeParameter(nameTok.Text, value, p.position(nameTok))
	return param, true
}
