package fsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsdc/internal/diag"
	"fsdc/internal/source"
)

func at(line, col int) source.Position {
	return source.NewPosition("TestApi.fsd", line, col)
}

func TestSynthesizePicksFurthestPosition(t *testing.T) {
	f := &diag.SyntaxFailure{}
	f.Expect(at(1, 30), "'x'")
	f.Expect(at(2, 1), "'service'")
	f.Expect(at(2, 1), "')'")
	f.Expect(at(1, 99), "'y'")
	f.Expect(at(2, 1), "'service'")

	err := Synthesize(f)
	assert.Equal(t, "TestApi.fsd(2,1): expected ')' or 'service'", err.Error())
	assert.Equal(t, diag.SynExpected, err.Code)
	assert.Same(t, f, err.Cause)
}

func TestSynthesizeRanking(t *testing.T) {
	f := &diag.SyntaxFailure{}
	for _, name := range []string{"'method'", "'['", "'}'", "field name", "';'", "'data'", "']'", "')'"} {
		f.Expect(at(3, 4), name)
	}
	got := Synthesize(f).Message
	assert.Equal(t, "expected ')' or ';' or ']' or '}' or '[' or 'data' or 'method' or field name", got)
}

func TestSynthesizeColumnBreaksTies(t *testing.T) {
	f := &diag.SyntaxFailure{}
	f.Expect(at(1, 8), "service name")
	f.Expect(at(1, 1), "'['")
	assert.Equal(t, "TestApi.fsd(1,8): expected service name", Synthesize(f).Error())
}

func TestSynthesizeEmpty(t *testing.T) {
	err := Synthesize(&diag.SyntaxFailure{})
	require.NotNil(t, err)
	assert.Equal(t, "invalid definition", err.Error())
	assert.False(t, err.Position.IsValid())

	assert.Nil(t, Synthesize(nil).Cause)
}
