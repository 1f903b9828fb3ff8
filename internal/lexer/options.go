package lexer

import (
	"fsdc/internal/source"
)

// Reporter принимает сообщения лексера без зависимости от diag.
// Лексер **только вызывает** его; ошибки лексера не становятся диагностиками,
// их видит парсер как Invalid-токены.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // может быть nil
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
