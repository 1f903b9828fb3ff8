package source

import "strings"

// SplitLines splits text into lines the way a line reader does: "\r\n", "\n"
// and a lone "\r" all terminate a line, a trailing terminator does not start
// an extra empty line, and empty text has no lines at all.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// JoinLines joins lines with "\n" regardless of the original terminators.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
