package diagfmt

import (
	"encoding/json"
	"io"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// Count is the number of diagnostics before Max is applied.
func BuildDiagnosticsOutput(files []FileDiagnostics, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0)}
	for _, fd := range files {
		for _, d := range fd.Errors {
			out.Count++
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				continue
			}
			dj := DiagnosticJSON{
				Severity: "error",
				Code:     d.Code.ID(),
				Title:    d.Code.Title(),
				Message:  d.Message,
				File:     fd.Name,
			}
			if d.Position.IsValid() {
				dj.File = d.Position.SourceName
				dj.Line = d.Position.Line
				dj.Column = d.Position.Column
			}
			if d.Cause != nil {
				dj.Cause = d.Cause.Error()
			}
			out.Diagnostics = append(out.Diagnostics, dj)
		}
	}
	return out
}

// JSON writes the diagnostics as one JSON document.
func JSON(w io.Writer, files []FileDiagnostics, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildDiagnosticsOutput(files, opts))
}
