package layout

import "github.com/typesetlang/typeset/layoutdsl"

// Layout is an unrendered structural document fragment. Values are built
// with the constructor functions in this package and are immutable. The
// node set is closed.
type Layout interface {
	layoutNode()
	// String renders the layout as DSL source text.
	String() string
}

type null struct{}

type text struct {
	data string
}

type fix struct {
	child Layout
}

type grp struct {
	child Layout
}

type seq struct {
	child Layout
}

type nest struct {
	child Layout
}

type pack struct {
	child Layout
}

type line struct {
	left, right Layout
	double      bool
}

type comp struct {
	left, right Layout
	pad, fixed  bool
}

func (null) layoutNode() {}
func (text) layoutNode() {}
func (fix) layoutNode()  {}
func (grp) layoutNode()  {}
func (seq) layoutNode()  {}
func (nest) layoutNode() {}
func (pack) layoutNode() {}
func (line) layoutNode() {}
func (comp) layoutNode() {}

// Null returns the empty layout.
func Null() Layout { return null{} }

// Text returns a layout holding a literal string.
func Text(data string) Layout { return text{data: data} }

// Fix wraps a layout so no line breaks are introduced inside it.
func Fix(child Layout) Layout { return fix{child: child} }

// Grp wraps a layout so it breaks as a unit.
func Grp(child Layout) Layout { return grp{child: child} }

// Seq wraps a layout so its compositions break together.
func Seq(child Layout) Layout { return seq{child: child} }

// Nest wraps a layout in one level of indentation.
func Nest(child Layout) Layout { return nest{child: child} }

// Pack wraps a layout so continuation lines align with its first element.
func Pack(child Layout) Layout { return pack{child: child} }

// Line composes two layouts with a forced line break between them.
func Line(left, right Layout) Layout {
	return line{left: left, right: right}
}

// DoubleLine composes two layouts with a forced line break and double
// spacing between them.
func DoubleLine(left, right Layout) Layout {
	return line{left: left, right: right, double: true}
}

// Comp composes two layouts. pad inserts a separator space; fixed forbids
// a line break at the composition point.
func Comp(left, right Layout, pad, fixed bool) Layout {
	return comp{left: left, right: right, pad: pad, fixed: fixed}
}

func (null) String() string   { return "null" }
func (t text) String() string { return layoutdsl.QuoteText(t.data) }

func (f fix) String() string  { return "fix " + primaryString(f.child) }
func (g grp) String() string  { return "grp " + primaryString(g.child) }
func (s seq) String() string  { return "seq " + primaryString(s.child) }
func (n nest) String() string { return "nest " + primaryString(n.child) }
func (p pack) String() string { return "pack " + primaryString(p.child) }

func (l line) String() string {
	op := "@"
	if l.double {
		op = "@@"
	}
	return atomString(l.left) + " " + op + " " + l.right.String()
}

func (c comp) String() string {
	var op string
	switch {
	case !c.pad && !c.fixed:
		op = "&"
	case c.pad && !c.fixed:
		op = "+"
	case !c.pad && c.fixed:
		op = "!&"
	default:
		op = "!+"
	}
	return atomString(c.left) + " " + op + " " + c.right.String()
}

// atomString parenthesizes binary compositions so the printed form keeps
// its structure under the right-associative grammar.
func atomString(l Layout) string {
	switch l.(type) {
	case line, comp:
		return "(" + l.String() + ")"
	}
	return l.String()
}

// primaryString parenthesizes anything that is not a primary, since only a
// primary may follow a prefix keyword.
func primaryString(l Layout) string {
	switch l.(type) {
	case null, text:
		return l.String()
	}
	return "(" + l.String() + ")"
}
