package source

import "fmt"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// NamedText is a source document identified by a logical name (usually a file name).
// The name is only used for diagnostics.
type NamedText struct {
	Name string
	Text string
}

// NewNamedText creates a NamedText.
func NewNamedText(name, text string) NamedText {
	return NamedText{Name: name, Text: text}
}

// Position is a 1-based line/column location inside a named source.
// The zero value means "no position".
type Position struct {
	SourceName string
	Line       int
	Column     int
}

// NewPosition creates a Position.
func NewPosition(sourceName string, line, column int) Position {
	return Position{SourceName: sourceName, Line: line, Column: column}
}

// IsValid reports whether the position points somewhere.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Compare orders positions by line, then column. Source names are not compared.
func (p Position) Compare(other Position) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// String renders the position as "name(line,column)".
func (p Position) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.SourceName, p.Line, p.Column)
}
