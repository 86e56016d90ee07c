package layoutdsl

import "fmt"

// Value is an opaque layout value owned by the engine.
type Value = any

// Engine is the layout-construction API the interpreter compiles against.
// The real engine lives in the layout package; tests substitute a recording
// mock to inspect constructor calls.
type Engine interface {
	Null() Value
	Text(data string) Value
	Fix(child Value) Value
	Grp(child Value) Value
	Seq(child Value) Value
	Nest(child Value) Value
	Pack(child Value) Value
	Line(left, right Value, double bool) Value
	Comp(left, right Value, pad, fix bool) Value
}

// Interpret reduces a syntax tree to a single layout value, substituting
// args[n] for each {n}. Children are evaluated left before right. The
// arguments are borrowed: a resolved {n} yields the caller's value itself,
// and one value may be referenced by several placeholders.
// Returns an *IndexError when a placeholder is out of range.
func Interpret(eng Engine, expr Expr, args []Value) (Value, error) {
	switch n := expr.(type) {
	case *Null:
		return eng.Null(), nil

	case *Text:
		return eng.Text(n.Data), nil

	case *Index:
		if n.N >= len(args) {
			return nil, &IndexError{Index: n.N, Argc: len(args), Pos: n.Pos}
		}
		return args[n.N], nil

	case *Unary:
		child, err := Interpret(eng, n.Child, args)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case OpFix:
			return eng.Fix(child), nil
		case OpGrp:
			return eng.Grp(child), nil
		case OpSeq:
			return eng.Seq(child), nil
		case OpNest:
			return eng.Nest(child), nil
		case OpPack:
			return eng.Pack(child), nil
		}
		panic(fmt.Sprintf("layoutdsl: unknown unary operator %d", n.Op))

	case *Binary:
		left, err := Interpret(eng, n.Left, args)
		if err != nil {
			return nil, err
		}
		right, err := Interpret(eng, n.Right, args)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case OpSingleLine:
			return eng.Line(left, right, false), nil
		case OpDoubleLine:
			return eng.Line(left, right, true), nil
		case OpUnpadComp:
			return eng.Comp(left, right, false, false), nil
		case OpPadComp:
			return eng.Comp(left, right, true, false), nil
		case OpFixUnpadComp:
			return eng.Comp(left, right, false, true), nil
		case OpFixPadComp:
			return eng.Comp(left, right, true, true), nil
		}
		panic(fmt.Sprintf("layoutdsl: unknown binary operator %d", n.Op))
	}

	panic(fmt.Sprintf("layoutdsl: unknown expression node %T", expr))
}

// ParseWith parses input and interprets the result against eng in one call.
func ParseWith(eng Engine, input string, args []Value) (Value, error) {
	expr, err := Parse([]byte(input))
	if err != nil {
		return nil, err
	}
	return Interpret(eng, expr, args)
}
