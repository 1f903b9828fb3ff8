// Package remarks separates a definition into its body and the remarks
// sections that follow it. A section starts at a markdown-style heading line
// ("# Name") and runs until the next heading or the end of the text.
package remarks

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fsdc/internal/diag"
	"fsdc/internal/ident"
	"fsdc/internal/source"
)

// Section is one remarks section.
type Section struct {
	Name string
	// Lines of the section body, blank lines trimmed from both ends.
	Lines []string
	// Position of the heading line, always column 1.
	Position source.Position
}

// Sections maps heading names to sections, ignoring case, in the order the
// headings appear.
type Sections struct {
	items []*Section
	index map[string]int
}

// NewSections creates an empty map.
func NewSections() *Sections {
	return &Sections{index: make(map[string]int)}
}

// Get returns the section with the given name (case-insensitive).
func (s *Sections) Get(name string) (*Section, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[ident.Fold(name)]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Lines returns the body lines of the named section, or nil.
func (s *Sections) Lines(name string) []string {
	if sec, ok := s.Get(name); ok {
		return sec.Lines
	}
	return nil
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// All returns the sections in heading order.
func (s *Sections) All() []*Section {
	if s == nil {
		return nil
	}
	return s.items
}

// add inserts sec unless a section with the same name exists.
func (s *Sections) add(sec *Section) bool {
	key := ident.Fold(sec.Name)
	if _, dup := s.index[key]; dup {
		return false
	}
	s.index[key] = len(s.items)
	s.items = append(s.items, sec)
	return true
}

// Result is the outcome of Extract.
type Result struct {
	// Body is the text before the first heading, lines rejoined with "\n".
	Body     source.NamedText
	Sections *Sections
	// Errors holds one "Duplicate remarks heading" error per repeated heading.
	Errors []*diag.DefinitionError
}

// Extract splits src into the definition body and its remarks sections.
// When a heading repeats (ignoring case) the first section wins and the
// later one is reported and dropped.
func Extract(src source.NamedText) Result {
	lines := source.SplitLines(src.Text)
	res := Result{Sections: NewSections()}

	bodyEnd := len(lines)
	var current *Section
	commit := func() {
		if current == nil {
			return
		}
		current.Lines = trimBlank(current.Lines)
		if !res.Sections.add(current) {
			res.Errors = append(res.Errors, diag.Newf(diag.RmkDuplicateHeading, current.Position, current.Name))
		}
	}

	for i, line := range lines {
		name, ok := heading(line)
		if !ok {
			if current != nil {
				current.Lines = append(current.Lines, line)
			}
			continue
		}
		if current == nil {
			bodyEnd = i
		}
		commit()
		current = &Section{Name: name, Position: source.NewPosition(src.Name, i+1, 1)}
	}
	commit()

	res.Body = source.NewNamedText(src.Name, source.JoinLines(lines[:bodyEnd]))
	return res
}

// heading reports whether line is "#" followed by at least one whitespace
// rune, and returns the trimmed rest of the line.
func heading(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(line[1:])
	if !unicode.IsSpace(r) {
		return "", false
	}
	return strings.TrimSpace(line[1:]), true
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	if start == end {
		return nil
	}
	return lines[start:end]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
