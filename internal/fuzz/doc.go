// Package fuzztests houses Go fuzz harnesses for the definition front end
// (source -> remarks -> lexer -> grammar -> validation). They guard against
// panics and hangs on arbitrary input and check the shape of every result.
//
// Назначение: прогонять произвольные байты через лексер и TryParseDefinition.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
