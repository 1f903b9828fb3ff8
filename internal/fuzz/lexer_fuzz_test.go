package fuzztests

import (
	"testing"

	"fsdc/internal/lexer"
	"fsdc/internal/source"
	"fsdc/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.fsd", input))
		lx := lexer.New(file, lexer.Options{})

		var prev uint32
		for {
			tok := lx.Next()
			if tok.Span.Start < prev || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %v has span %v after offset %d", tok.Kind, tok.Span, prev)
			}
			prev = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
