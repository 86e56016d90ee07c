package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesetlang/typeset/layout"
	"github.com/typesetlang/typeset/layoutdsl"
)

func TestParseSimpleComposition(t *testing.T) {
	value, err := Parse(`"hello" + "world"`)
	require.NoError(t, err)
	assert.Equal(t, `"hello" + "world"`, value.String())
}

func TestParseArgumentSubstitution(t *testing.T) {
	value, err := Parse(`{0} + {1}`, layout.Text("a"), layout.Text("b"))
	require.NoError(t, err)

	direct, err := Parse(`"a" + "b"`)
	require.NoError(t, err)
	assert.Equal(t, direct, value)
}

func TestParseArgumentIsSharedNotCopied(t *testing.T) {
	arg := layout.Text("x")
	value, err := Parse(`{0}`, arg)
	require.NoError(t, err)
	assert.Equal(t, arg, value)

	value, err = Parse(`{0} & {0}`, arg)
	require.NoError(t, err)
	assert.Equal(t, layout.Comp(arg, arg, false, false), value)
}

func TestParsePrebuiltArguments(t *testing.T) {
	inner, err := Parse(`grp ("a" @ "b")`)
	require.NoError(t, err)

	value, err := Parse(`{0} + null`, inner)
	require.NoError(t, err)
	assert.Equal(t, `grp ("a" @ "b") + null`, value.String())
}

func TestParseIndexError(t *testing.T) {
	_, err := Parse(`{0} + {1}`, layout.Text("only one"))
	require.Error(t, err)

	idxErr, ok := err.(*layoutdsl.IndexError)
	require.True(t, ok)
	assert.Equal(t, 1, idxErr.Index)
	assert.Equal(t, 1, idxErr.Argc)
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := Parse(`"hello" : "world"`)
	require.Error(t, err)

	lexErr, ok := err.(*layoutdsl.LexError)
	require.True(t, ok)
	assert.Equal(t, 1, lexErr.Pos.Line)
	assert.Equal(t, 9, lexErr.Pos.Column)
}

func TestParseDeterministic(t *testing.T) {
	src := `nest ({0} @@ "b") !& null`
	arg := layout.Text("a")

	first, err := Parse(src, arg)
	require.NoError(t, err)
	second, err := Parse(src, arg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
