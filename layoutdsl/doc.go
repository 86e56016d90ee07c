// Package layoutdsl implements the front end of the typeset layout DSL.
//
// The DSL is a compact notation for building layout trees: string literals
// become text layouts, {n} placeholders reference caller-supplied layouts,
// prefix keywords (fix, grp, seq, nest, pack) wrap a layout, and six infix
// operators compose two layouts:
//
//	@   forced line break
//	@@  forced line break with double spacing
//	&   unpadded composition
//	+   padded composition
//	!&  unpadded composition, no break inside
//	!+  padded composition, no break inside
//
// All infix operators share one precedence tier and associate to the right;
// prefix keywords bind tighter than any infix operator. Parentheses group.
//
// The package is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, resolving string
//     escapes and skipping insignificant whitespace.
//   - Parser: consumes tokens according to the grammar and builds the
//     syntax tree (Expr).
//   - Interpreter: reduces a syntax tree plus an argument list into one
//     layout value through an Engine, the layout-construction interface.
//
// Usage:
//
//	expr, err := layoutdsl.Parse([]byte(`"hello" + {0}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := layoutdsl.Interpret(eng, expr, args)
//
// Parsing and interpretation are pure functions of their inputs; calls are
// independent and safe to run concurrently.
package layoutdsl
