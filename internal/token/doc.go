// Package token defines lexical token kinds and trivia for definition files.
// Invariants:
//   - Token.Text is a slice of the original source.
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords (service, method, data, enum, errors) are lexed as Ident;
//     the parser decides where they act as keywords.
//   - Comments ("//") and doc comments ("///") are leading Trivia and
//     never appear in the main token stream.
package token
