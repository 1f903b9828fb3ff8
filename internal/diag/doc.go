// Package diag holds the diagnostics produced while reading a definition:
// DefinitionError with its code and position, the ordered Bag that collects
// them, and SyntaxFailure, the raw form a grammar engine reports before the
// failure is turned into a single readable message.
package diag
