package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"fsdc/internal/diag"
	"fsdc/internal/format"
	"fsdc/internal/fsd"
	"fsdc/internal/source"
)

func parseTestdata(t *testing.T, name string) (source.NamedText, fsd.Result) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	src := source.NewNamedText(name, string(data))
	return src, fsd.TryParseDefinition(src)
}

func TestTestdataResults(t *testing.T) {
	for _, name := range []string{"widgets.fsd", "broken.fsd", "invalid.fsd"} {
		t.Run(name, func(t *testing.T) {
			src, res := parseTestdata(t, name)
			if err := CheckResult(src, res); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestWidgetsCanonical(t *testing.T) {
	_, res := parseTestdata(t, "widgets.fsd")
	if !res.Success() {
		t.Fatalf("widgets.fsd: %v", res.Err())
	}
	for _, opt := range []format.Options{{}, {UseSpaces: true, IndentWidth: 2}, {GeneratorName: "test"}} {
		if err := CheckCanonical(res.Service, opt); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCheckResultRejectsDisorder(t *testing.T) {
	src := source.NewNamedText("a.fsd", "service A {}\n")
	pos := source.NewPosition("a.fsd", 1, 1)
	res := fsd.Result{Errors: []*diag.DefinitionError{
		diag.New(diag.SynExpected, pos, "expected '{'"),
		diag.New(diag.RmkDuplicateHeading, pos, "Duplicate remarks heading: A"),
	}}
	if err := CheckResult(src, res); err == nil {
		t.Fatal("out of order errors accepted")
	}

	res.Errors = []*diag.DefinitionError{diag.New(diag.SynExpected, source.NewPosition("b.fsd", 1, 1), "x")}
	if err := CheckResult(src, res); err == nil {
		t.Fatal("foreign source name accepted")
	}

	if err := CheckResult(src, fsd.Result{}); err == nil {
		t.Fatal("empty result accepted")
	}
}
