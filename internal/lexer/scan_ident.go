package lexer

import (
	"fsdc/internal/token"
)

// scanWord сканирует слово: буквы, цифры, '_' (в том числе Unicode-буквы).
// Является ли слово корректным именем, решает валидатор, а не лексер.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isWordByte(byte(r)) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !isWordRune(r) {
			break
		}
		lx.bumpRune()
	}
	if lx.cursor.Off == uint32(start) {
		// руна, не являющаяся буквой: один Invalid-токен на руну
		lx.bumpRune()
		tok := lx.emit(token.Invalid, start)
		lx.report("unexpected-char", tok.Span, "unexpected character "+tok.Text)
		return tok
	}
	return lx.emit(token.Ident, start)
}

// scanNumber сканирует -?[0-9][0-9A-Za-z_.]*: значения параметров атрибутов
// вроде 202, -1 или 1.5 хранятся как текст.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Eat('-')
	for {
		b := lx.cursor.Peek()
		if !isWordByte(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Number, start)
}

// scanPunct сканирует односимвольную пунктуацию.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	kind, ok := punct[b]
	if !ok {
		tok := lx.emit(token.Invalid, start)
		lx.report("unexpected-char", tok.Span, "unexpected character "+tok.Text)
		return tok
	}
	return lx.emit(kind, start)
}

var punct = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'<': token.Lt,
	'>': token.Gt,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
}
