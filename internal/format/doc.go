// Package format renders definition models back to canonical FSD text.
//
// Назначение: fsd fmt и генераторы, которым нужен стабильный текст определения.
// Не делает: сохранения обычных комментариев и исходной раскладки, IO.
// Зависимости: internal/definition, internal/lexer (кавычки строк).
package format
