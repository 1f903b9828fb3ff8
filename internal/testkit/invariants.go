// Package testkit holds invariant checks shared by package tests and fuzz
// harnesses.
package testkit

import (
	"bytes"
	"fmt"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/format"
	"fsdc/internal/fsd"
	"fsdc/internal/source"
)

// stage orders diagnostics the way the parser reports them: duplicate
// remarks, then the syntax error, then validation, then unused remarks.
func stage(code diag.Code) int {
	switch {
	case code == diag.RmkUnusedHeading:
		return 3
	case code >= diag.RmkInfo && code < diag.SynInfo:
		return 0
	case code >= diag.SynInfo && code < diag.DefInfo:
		return 1
	default:
		return 2
	}
}

// CheckResult verifies the shape of a parse result for src:
// 1) a result without errors carries a service
// 2) every error points inside src and names it
// 3) errors come in stage order, with at most one syntax error
// 4) a syntax error means no service and no validation errors
func CheckResult(src source.NamedText, res fsd.Result) error {
	if len(res.Errors) == 0 && res.Service == nil {
		return fmt.Errorf("no errors and no service")
	}
	lines := len(source.SplitLines(src.Text))
	last, syntax := -1, 0
	for i, e := range res.Errors {
		if e == nil {
			return fmt.Errorf("nil error at %d", i)
		}
		if e.Code == diag.SynInvalidDefinition {
			// ошибки движка могут не иметь позиции
			continue
		}
		pos := e.Position
		if pos.SourceName != src.Name {
			return fmt.Errorf("error %d names %q, want %q", i, pos.SourceName, src.Name)
		}
		if pos.Line < 1 || pos.Line > max(lines, 1) || pos.Column < 1 {
			return fmt.Errorf("error %d out of range: %s", i, e)
		}
		st := stage(e.Code)
		if st < last {
			return fmt.Errorf("error %d (%s) reported out of order", i, e.Code.ID())
		}
		last = st
		if st == 1 {
			syntax++
		}
	}
	if syntax > 1 {
		return fmt.Errorf("%d syntax errors, want at most one", syntax)
	}
	if syntax == 1 && res.Service != nil {
		return fmt.Errorf("syntax error with a service")
	}
	return nil
}

// CheckCanonical verifies that the canonical text of svc parses without
// errors and renders back to the same text.
func CheckCanonical(svc *definition.ServiceInfo, opt format.Options) error {
	first := format.Generate(svc, opt)
	src := source.NewNamedText("canonical.fsd", string(first))
	res := fsd.TryParseDefinition(src)
	if !res.Success() {
		return fmt.Errorf("canonical text does not parse: %v\n%s", res.Err(), first)
	}
	second := format.Generate(res.Service, opt)
	if !bytes.Equal(first, second) {
		return fmt.Errorf("canonical text is not stable:\n%s\n---\n%s", first, second)
	}
	return nil
}
