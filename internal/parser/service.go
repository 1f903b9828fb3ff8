package parser

import (
	"fsdc/internal/definition"
	"fsdc/internal/token"
)

// parseDefinition parses the whole body:
//
//	[attrs] service Name { members } <end>
func (p *Parser) parseDefinition() (*definition.ServiceInfo, bool) {
	first := p.peek()
	attrs, ok := p.parseAttributeLists()
	if !ok {
		return nil, false
	}
	kwTok, ok := p.acceptKeyword(token.KwService)
	if !ok {
		return nil, false
	}
	nameTok, ok := p.acceptName(nameService)
	if !ok {
		return nil, false
	}
	if _, ok = p.accept(token.LBrace); !ok {
		return nil, false
	}

	var members []definition.ServiceMemberInfo
	for {
		member, found, ok := p.parseMember()
		if !ok {
			return nil, false
		}
		if !found {
			break
		}
		members = append(members, member)
	}

	if _, ok = p.accept(token.RBrace); !ok {
		return nil, false
	}
	if !p.at(token.EOF) {
		p.miss(nameEnd)
		return nil, false
	}

	svc, _ := definition.TryNewService(nameTok.Text, members, definition.Info{
		Attributes: attrs,
		Summary:    summaryOf(first, kwTok),
		Remarks:    p.remarksFor(nameTok.Text),
		Position:   p.position(nameTok),
	})
	return svc, true
}

// parseMember parses one member. found is false when the next token cannot
// start a member; ok is false on a syntax error.
//
//	[attrs] method Name { fields } : { fields }
//	[attrs] data Name { fields }
//	[attrs] enum Name { values }
//	[attrs] errors Name { values }
func (p *Parser) parseMember() (member definition.ServiceMemberInfo, found, ok bool) {
	first := p.peek()
	attrs, ok := p.parseAttributeLists()
	if !ok {
		return nil, false, false
	}
	hadAttrs := len(attrs) != 0

	var kw string
	for _, candidate := range []string{token.KwMethod, token.KwData, token.KwEnum, token.KwErrors} {
		if p.atKeyword(candidate) {
			kw = candidate
			break
		}
	}
	if kw == "" {
		for _, candidate := range []string{token.KwData, token.KwEnum, token.KwErrors, token.KwMethod} {
			p.miss(token.Quote(candidate))
		}
		// атрибуты без члена считаются синтаксической ошибкой
		return nil, false, !hadAttrs
	}
	kwTok := p.advance()

	info := func(nameTok token.Token) definition.Info {
		return definition.Info{
			Attributes: attrs,
			Summary:    summaryOf(first, kwTok),
			Remarks:    p.remarksFor(nameTok.Text),
			Position:   p.position(nameTok),
		}
	}

	switch kw {
	case token.KwMethod:
		m, ok := p.parseMethod(info)
		return m, ok, ok
	case token.KwData:
		d, ok := p.parseDto(info)
		return d, ok, ok
	case token.KwEnum:
		e, ok := p.parseEnum(info)
		return e, ok, ok
	default:
		s, ok := p.parseErrorSet(info)
		return s, ok, ok
	}
}

func (p *Parser) parseMethod(info func(token.Token) definition.Info) (*definition.ServiceMethodInfo, bool) {
	nameTok, ok := p.acceptName(nameMethod)
	if !ok {
		return nil, false
	}
	request, ok := p.parseFieldBlock()
	if !ok {
		return nil, false
	}
	if _, ok = p.accept(token.Colon); !ok {
		return nil, false
	}
	response, ok := p.parseFieldBlock()
	if !ok {
		return nil, false
	}
	m, _ := definition.TryNewServiceMethod(nameTok.Text, request, response, info(nameTok))
	return m, true
}

func (p *Parser) parseDto(info func(token.Token) definition.Info) (*definition.ServiceDtoInfo, bool) {
	nameTok, ok := p.acceptName(nameDto)
	if !ok {
		return nil, false
	}
	fields, ok := p.parseFieldBlock()
	if !ok {
		return nil, false
	}
	d, _ := definition.TryNewServiceDto(nameTok.Text, fields, info(nameTok))
	return d, true
}

func (p *Parser) parseEnum(info func(token.Token) definition.Info) (*definition.ServiceEnumInfo, bool) {
	nameTok, ok := p.acceptName(nameEnum)
	if !ok {
		return nil, false
	}
	var values []*definition.ServiceEnumValueInfo
	ok = p.parseValueBlock(nameEnumValue, func(nameTok token.Token, vi definition.Info) {
		v, _ := definition.TryNewServiceEnumValue(nameTok.Text, vi)
		values = append(values, v)
	})
	if !ok {
		return nil, false
	}
	e, _ := definition.TryNewServiceEnum(nameTok.Text, values, info(nameTok))
	return e, true
}

func (p *Parser) parseErrorSet(info func(token.Token) definition.Info) (*definition.ServiceErrorSetInfo, bool) {
	nameTok, ok := p.acceptName(nameErrorSet)
	if !ok {
		return nil, false
	}
	var errs []*definition.ServiceErrorInfo
	ok = p.parseValueBlock(nameError, func(nameTok token.Token, vi definition.Info) {
		e, _ := definition.TryNewServiceError(nameTok.Text, vi)
		errs = append(errs, e)
	})
	if !ok {
		return nil, false
	}
	s, _ := definition.TryNewServiceErrorSet(nameTok.Text, errs, info(nameTok))
	return s, true
}

// parseValueBlock parses { [attrs] a, [attrs] b, } with an optional trailing comma.
func (p *Parser) parseValueBlock(valueName string, add func(token.Token, definition.Info)) bool {
	if _, ok := p.accept(token.LBrace); !ok {
		return false
	}
	for {
		first := p.peek()
		attrs, ok := p.parseAttributeLists()
		if !ok {
			return false
		}
		if !p.at(token.Ident) {
			p.miss(valueName)
			if len(attrs) != 0 {
				return false
			}
			break
		}
		nameTok := p.advance()
		add(nameTok, definition.Info{
			Attributes: attrs,
			Summary:    summaryOf(first, nameTok),
			Position:   p.position(nameTok),
		})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		p.miss(token.Comma.String())
		break
	}
	_, ok := p.accept(token.RBrace)
	return ok
}
