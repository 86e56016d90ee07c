// Package layout defines the layout values produced by the typeset DSL.
//
// A Layout is an immutable tree of text fragments and composition
// combinators, mirroring the construction API of the typeset rendering
// engine: Null, Text, the wrappers Fix, Grp, Seq, Nest and Pack, forced
// line breaks (Line, DoubleLine) and general composition (Comp with pad
// and fixed flags).
//
// This package only constructs layout values. Compiling a layout into a
// render-ready document and rendering it at a given width are performed by
// the downstream engine; every value built here is a valid input to its
// compile step.
package layout
