// Package typeset compiles layout DSL expressions into layout values.
//
// It binds the layoutdsl front end to the layout construction API:
//
//	value, err := typeset.Parse(`"hello" + {0}`, layout.Text("world"))
//
// Errors are *layoutdsl.LexError, *layoutdsl.SyntaxError,
// *layoutdsl.ValueError or *layoutdsl.IndexError, all carrying source
// positions.
package typeset

import (
	"github.com/typesetlang/typeset/layout"
	"github.com/typesetlang/typeset/layoutdsl"
)

// engine adapts the layout constructors to the interpreter's Engine
// interface. Every value passing through it is a layout.Layout.
type engine struct{}

func (engine) Null() layoutdsl.Value            { return layout.Null() }
func (engine) Text(data string) layoutdsl.Value { return layout.Text(data) }

func (engine) Fix(child layoutdsl.Value) layoutdsl.Value {
	return layout.Fix(child.(layout.Layout))
}

func (engine) Grp(child layoutdsl.Value) layoutdsl.Value {
	return layout.Grp(child.(layout.Layout))
}

func (engine) Seq(child layoutdsl.Value) layoutdsl.Value {
	return layout.Seq(child.(layout.Layout))
}

func (engine) Nest(child layoutdsl.Value) layoutdsl.Value {
	return layout.Nest(child.(layout.Layout))
}

func (engine) Pack(child layoutdsl.Value) layoutdsl.Value {
	return layout.Pack(child.(layout.Layout))
}

func (engine) Line(left, right layoutdsl.Value, double bool) layoutdsl.Value {
	if double {
		return layout.DoubleLine(left.(layout.Layout), right.(layout.Layout))
	}
	return layout.Line(left.(layout.Layout), right.(layout.Layout))
}

func (engine) Comp(left, right layoutdsl.Value, pad, fix bool) layoutdsl.Value {
	return layout.Comp(left.(layout.Layout), right.(layout.Layout), pad, fix)
}

// Parse compiles a layout expression into a layout value. args[i] is
// substituted for {i} in the input, 0-based.
func Parse(input string, args ...layout.Layout) (layout.Layout, error) {
	values := make([]layoutdsl.Value, len(args))
	for i, arg := range args {
		values[i] = arg
	}

	value, err := layoutdsl.ParseWith(engine{}, input, values)
	if err != nil {
		return nil, err
	}
	return value.(layout.Layout), nil
}
