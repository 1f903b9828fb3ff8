package diagfmt

import (
	"fsdc/internal/diag"
	"fsdc/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of source lines shown above the offending one.
	Context int
	// Width caps the rendered source line; 0 means unlimited.
	Width int
	// ShowCodes prints the diagnostic code after the position.
	ShowCodes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max    int // обрезка вывода, не Bag
	Indent bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}

// FileDiagnostics groups the diagnostics of one definition file.
// File may be nil when the file could not be read; pretty output then has
// no source excerpt.
type FileDiagnostics struct {
	Name   string
	File   *source.File
	Errors []*diag.DefinitionError
}
