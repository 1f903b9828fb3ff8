package remarks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsdc/internal/remarks"
	"fsdc/internal/source"
)

func extract(text string) remarks.Result {
	return remarks.Extract(source.NewNamedText("TestApi.fsd", text))
}

func TestNoHeadings(t *testing.T) {
	tests := []struct {
		input string
		body  string
	}{
		{"", ""},
		{"service TestApi{}", "service TestApi{}"},
		{" \r\n\t ", " \n\t "},
		{"a\rb\r\nc\n", "a\nb\nc"},
		{"#notaheading\n#\n", "#notaheading\n#"},
	}
	for _, tt := range tests {
		res := extract(tt.input)
		assert.Equal(t, tt.body, res.Body.Text, "input %q", tt.input)
		assert.Equal(t, "TestApi.fsd", res.Body.Name)
		assert.Zero(t, res.Sections.Len(), "input %q", tt.input)
		assert.Empty(t, res.Errors)
	}
}

func TestSections(t *testing.T) {
	res := extract("service TestApi{}\n\n# TestApi\n\ntest\n\nremarks\n   \n#\tdo  \nmore\n")
	require.Empty(t, res.Errors)
	assert.Equal(t, "service TestApi{}\n", res.Body.Text)
	require.Equal(t, 2, res.Sections.Len())

	api, ok := res.Sections.Get("testapi")
	require.True(t, ok)
	assert.Equal(t, "TestApi", api.Name)
	assert.Equal(t, []string{"test", "", "remarks"}, api.Lines)
	assert.Equal(t, source.NewPosition("TestApi.fsd", 3, 1), api.Position)

	do := res.Sections.All()[1]
	assert.Equal(t, "do", do.Name)
	assert.Equal(t, []string{"more"}, do.Lines)
	assert.Equal(t, 9, do.Position.Line)
	assert.Equal(t, []string{"more"}, res.Sections.Lines("DO"))
	assert.Nil(t, res.Sections.Lines("missing"))
}

func TestEmptySection(t *testing.T) {
	res := extract("service X{}\n# X\n\n \n")
	sec, ok := res.Sections.Get("X")
	require.True(t, ok)
	assert.Empty(t, sec.Lines)
}

func TestDuplicateHeading(t *testing.T) {
	res := extract("service TestApi { method do {}: {} }\n# do\nremarks\n# DO\nother\n# do\nthird")
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "TestApi.fsd(4,1): Duplicate remarks heading: DO", res.Errors[0].Error())
	assert.Equal(t, "TestApi.fsd(6,1): Duplicate remarks heading: do", res.Errors[1].Error())
	assert.Equal(t, 1, res.Sections.Len())
	assert.Equal(t, []string{"remarks"}, res.Sections.Lines("do"))
	assert.Equal(t, "service TestApi { method do {}: {} }", res.Body.Text)
}

func TestHeadingAtStart(t *testing.T) {
	res := extract("# only\ntext")
	assert.Equal(t, "", res.Body.Text)
	assert.Equal(t, []string{"text"}, res.Sections.Lines("only"))
}

func TestNilSections(t *testing.T) {
	var s *remarks.Sections
	_, ok := s.Get("x")
	assert.False(t, ok)
	assert.Zero(t, s.Len())
	assert.Nil(t, s.All())
}
