package diag

import "strings"

// FormatShort renders diagnostics one per line in reporting order,
// each line being the diagnostic's Error() text.
func FormatShort(diags []*DefinitionError) string {
	if len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

// FormatShortWithCodes is FormatShort with the diagnostic code in front of each line.
func FormatShortWithCodes(diags []*DefinitionError) string {
	if len(diags) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Code.ID())
		b.WriteByte(' ')
		b.WriteString(d.Error())
	}
	return b.String()
}
