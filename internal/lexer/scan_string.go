package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"fsdc/internal/token"
)

// scanString сканирует "..." с JSON-подобными escape: \" \\ \/ \b \f \n \r \t \uXXXX.
// Незакрытая строка или перевод строки внутри дают Invalid-токен.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if !lx.scanEscape() {
				tok := lx.emit(token.Invalid, start)
				lx.report("bad-escape", tok.Span, "invalid escape sequence")
				return tok
			}
		case '\n':
			tok := lx.emit(token.Invalid, start)
			lx.report("unterminated-string", tok.Span, "newline in string literal")
			return tok
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.report("unterminated-string", tok.Span, "unterminated string literal")
	return tok
}

func (lx *Lexer) scanEscape() bool {
	switch lx.cursor.Peek() {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		lx.cursor.Bump()
		return true
	case 'u':
		lx.cursor.Bump()
		for range 4 {
			if !isHex(lx.cursor.Peek()) {
				return false
			}
			lx.cursor.Bump()
		}
		return true
	default:
		return false
	}
}

// Unquote decodes the text of a StringLit token.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("not a string literal: %s", lit)
	}
	body := lit[1 : len(lit)-1]
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("dangling escape in %s", lit)
		}
		switch body[i] {
		case '"', '\\', '/':
			b.WriteByte(body[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+5 > len(body) {
				return "", fmt.Errorf("short unicode escape in %s", lit)
			}
			v, err := strconv.ParseUint(body[i+1:i+5], 16, 16)
			if err != nil {
				return "", fmt.Errorf("bad unicode escape in %s: %w", lit, err)
			}
			b.WriteRune(rune(v))
			i += 4
		default:
			return "", fmt.Errorf("unknown escape \\%c in %s", body[i], lit)
		}
	}
	return b.String(), nil
}

// Quote renders s as a string literal accepted by the lexer.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
