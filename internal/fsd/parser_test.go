package fsd_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/fsd"
	"fsdc/internal/remarks"
	"fsdc/internal/source"
	"fsdc/internal/trace"
)

func parseTestApi(t *testing.T, text string) *definition.ServiceInfo {
	t.Helper()
	svc, err := fsd.ParseDefinition(source.NewNamedText("TestApi.fsd", text))
	require.NoError(t, err)
	return svc
}

func parseInvalidTestApi(t *testing.T, text string) *diag.DefinitionError {
	t.Helper()
	_, err := fsd.ParseDefinition(source.NewNamedText("TestApi.fsd", text))
	require.Error(t, err, "parse did not fail: %q", text)
	var defErr *diag.DefinitionError
	require.ErrorAs(t, err, &defErr)
	return defErr
}

func TestEmptyServiceDefinition(t *testing.T) {
	svc := parseTestApi(t, "service TestApi{}")
	assert.Equal(t, "TestApi", svc.Name())
	assert.Empty(t, svc.Attributes())
	assert.Empty(t, svc.Members())
	assert.Empty(t, svc.Summary())
	assert.Empty(t, svc.Remarks())
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "TestApi.fsd(1,1): expected '[' or 'service'"},
		{" \r\n\t ", "TestApi.fsd(2,3): expected '[' or 'service'"},
		{"service{}", "TestApi.fsd(1,8): expected service name"},
		{"service TestApi", "TestApi.fsd(1,16): expected '{'"},
		{"service TestApi {", "TestApi.fsd(1,18): expected '}' or '[' or 'data' or 'enum' or 'errors' or 'method'"},
		{"service TestApi{} service TestApi{}", "TestApi.fsd(1,19): expected end"},
		{"service TestApi { method do {} }", "TestApi.fsd(1,32): expected ':'"},
		{"service TestApi { enum E { a b } }", "TestApi.fsd(1,30): expected '}' or ','"},
	}
	for _, tt := range tests {
		err := parseInvalidTestApi(t, tt.text)
		assert.Equal(t, tt.want, err.Error(), "input %q", tt.text)

		var failure *diag.SyntaxFailure
		assert.True(t, errors.As(err, &failure), "syntax errors keep the engine failure as cause")
	}
}

func TestSummary(t *testing.T) {
	svc := parseTestApi(t, "/// test\n/// summary\nservice TestApi{}")
	assert.Equal(t, "test summary", svc.Summary())
}

func TestServiceRemarks(t *testing.T) {
	svc := parseTestApi(t, "service TestApi{}\n# TestApi\ntest\nremarks")
	assert.Equal(t, []string{"test", "remarks"}, svc.Remarks())
}

func TestMethodRemarks(t *testing.T) {
	svc := parseTestApi(t, "service TestApi { method do {}: {} }\n# do\nremarks")
	require.Len(t, svc.Methods(), 1)
	assert.Equal(t, []string{"remarks"}, svc.Methods()[0].Remarks())
}

func TestDuplicateRemarks(t *testing.T) {
	err := parseInvalidTestApi(t, "service TestApi { method do {}: {} }\n# do\nremarks\n# do\nremarks")
	assert.Equal(t, "TestApi.fsd(4,1): Duplicate remarks heading: do", err.Error())
	assert.Equal(t, "Duplicate remarks heading: do", err.Message)
	assert.Equal(t, source.NewPosition("TestApi.fsd", 4, 1), err.Position)
}

func TestUnusedRemarks(t *testing.T) {
	err := parseInvalidTestApi(t, "service TestApi{}\n# TestApi2\ntest\nremarks")
	assert.Equal(t, "TestApi.fsd(2,1): Unused remarks heading: TestApi2", err.Error())
}

func TestRemarksMatchIgnoringCase(t *testing.T) {
	svc := parseTestApi(t, "service TestApi { method do {}: {} }\n# testapi\nabout\n# DO\nremarks")
	assert.Equal(t, []string{"about"}, svc.Remarks())
	assert.Equal(t, []string{"remarks"}, svc.Methods()[0].Remarks())
}

func TestTryParseCollectsEverything(t *testing.T) {
	text := "service TestApi {\n" +
		"  method do { id: string; id: string; }: {}\n" +
		"  data do {}\n" +
		"}\n" +
		"# do\nfirst\n" +
		"# Do\nsecond\n" +
		"# nothing\nthird"
	res := fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", text))
	assert.False(t, res.Success())
	require.NotNil(t, res.Service, "validation failures keep the tree")
	assert.Equal(t, []string{
		"TestApi.fsd(7,1): Duplicate remarks heading: Do",
		"TestApi.fsd(3,8): Duplicate service member: do",
		"TestApi.fsd(2,27): Duplicate request field: id",
		"TestApi.fsd(9,1): Unused remarks heading: nothing",
	}, strings.Split(diag.FormatShort(res.Errors), "\n"))
	assert.Equal(t, res.Errors[0], res.Err())
}

func TestExtractionErrorsPrecedeSyntaxError(t *testing.T) {
	res := fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", "service TestApi {\n# a\n# a"))
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "TestApi.fsd(3,1): Duplicate remarks heading: a", res.Errors[0].Error())
	assert.Equal(t, "TestApi.fsd(1,18): expected '}' or '[' or 'data' or 'enum' or 'errors' or 'method'", res.Errors[1].Error())
	assert.Nil(t, res.Service)
}

func TestInvalidNames(t *testing.T) {
	res := fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", "service Äpi { method dö {}: {} }"))
	assert.Equal(t, []string{
		"TestApi.fsd(1,9): Invalid name: Äpi",
		"TestApi.fsd(1,22): Invalid name: dö",
	}, strings.Split(diag.FormatShort(res.Errors), "\n"))
}

func TestServiceRemarksHeadingIgnoresCase(t *testing.T) {
	res := fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", "service TestApi {}\n# testapi\nService remarks."))
	require.True(t, res.Success(), "unexpected errors: %v", res.Errors)
	assert.Equal(t, []string{"Service remarks."}, res.Service.Remarks())
}

func TestCustomEngine(t *testing.T) {
	t.Run("definition error passes through", func(t *testing.T) {
		want := diag.New(diag.DefInvalidName, source.NewPosition("x.fsd", 3, 3), "Invalid name: ?")
		p := fsd.NewParser(fsd.WithEngine(fsd.EngineFunc(func(source.NamedText, *remarks.Sections) (*definition.ServiceInfo, error) {
			return nil, want
		})))
		res := p.TryParseDefinition(source.NewNamedText("x.fsd", "anything"))
		require.Len(t, res.Errors, 1)
		assert.Same(t, want, res.Errors[0])
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		p := fsd.NewParser(fsd.WithEngine(fsd.EngineFunc(func(source.NamedText, *remarks.Sections) (*definition.ServiceInfo, error) {
			return nil, boom
		})))
		_, err := p.ParseDefinition(source.NewNamedText("x.fsd", "anything"))
		require.ErrorIs(t, err, boom)
		assert.Equal(t, "invalid definition: boom", err.Error())
	})

	t.Run("engine sees the body without remarks", func(t *testing.T) {
		var seen string
		p := fsd.NewParser(fsd.WithEngine(fsd.EngineFunc(func(body source.NamedText, sections *remarks.Sections) (*definition.ServiceInfo, error) {
			seen = body.Text
			return definition.NewService("X", nil, definition.Info{Remarks: sections.Lines("X")})
		})))
		svc, err := p.ParseDefinition(source.NewNamedText("x.fsd", "a\r\nb\n# X\nr"))
		require.NoError(t, err)
		assert.Equal(t, "a\nb", seen)
		assert.Equal(t, []string{"r"}, svc.Remarks())
	})
}

func TestTracerSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	p := fsd.NewParser(fsd.WithTracer(tr))
	res := p.TryParseDefinition(source.NewNamedText("TestApi.fsd", "service TestApi{}"))
	require.True(t, res.Success())

	out := buf.String()
	for _, name := range []string{"extract", "grammar", "validate"} {
		assert.Equal(t, 2, strings.Count(out, name), "span %s:\n%s", name, out)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	text := "service TestApi { method do { a: string; a: int32; }: {} }\n# x\n# x"
	first := diag.FormatShort(fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", text)).Errors)
	for range 5 {
		again := diag.FormatShort(fsd.TryParseDefinition(source.NewNamedText("TestApi.fsd", text)).Errors)
		assert.Equal(t, first, again)
	}
}
