package layoutdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArity(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{`null`, 0},
		{`"a" + "b"`, 0},
		{`{0}`, 1},
		{`{0} + {4}`, 5},
		{`fix ({2} & {1})`, 3},
		{`{0} @ {0} @ {0}`, 1},
	}
	for _, tt := range tests {
		expr := parseExpr(t, tt.input)
		assert.Equal(t, tt.want, Arity(expr), "input: %s", tt.input)
	}
}

func TestIndices(t *testing.T) {
	expr := parseExpr(t, `{4} + ({0} & {4})`)
	assert.Equal(t, []int{0, 4}, Indices(expr))

	expr = parseExpr(t, `"no variables here"`)
	assert.Empty(t, Indices(expr))
}
