package diagfmt

import (
	"io"

	"fsdc/internal/diag"
)

// Short prints one "name(line,col): message" line per diagnostic.
func Short(w io.Writer, files []FileDiagnostics, withCodes bool) error {
	for _, fd := range files {
		if len(fd.Errors) == 0 {
			continue
		}
		text := diag.FormatShort(fd.Errors)
		if withCodes {
			text = diag.FormatShortWithCodes(fd.Errors)
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}
