package layoutdsl

import "fmt"

// ParseError is the base error type for all layoutdsl errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, unknown
// escape, invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// ValueError represents a value conversion error (index overflow).
type ValueError struct{ ParseError }

// IndexError reports a {n} reference beyond the supplied argument list.
type IndexError struct {
	Index int // the referenced argument position
	Argc  int // the number of arguments supplied
	Pos   Position
}

func (e *IndexError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: argument index %d out of range (%d supplied)", e.Pos.Line, e.Pos.Column, e.Index, e.Argc)
	}
	return fmt.Sprintf("argument index %d out of range (%d supplied)", e.Index, e.Argc)
}
