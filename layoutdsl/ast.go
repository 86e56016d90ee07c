package layoutdsl

import (
	"strconv"
	"strings"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// UnaryOp identifies a prefix layout combinator.
type UnaryOp int

const (
	OpFix UnaryOp = iota
	OpGrp
	OpSeq
	OpNest
	OpPack
)

var unaryNames = map[UnaryOp]string{
	OpFix:  "fix",
	OpGrp:  "grp",
	OpSeq:  "seq",
	OpNest: "nest",
	OpPack: "pack",
}

func (op UnaryOp) String() string { return unaryNames[op] }

// BinaryOp identifies an infix layout combinator.
type BinaryOp int

const (
	OpSingleLine BinaryOp = iota
	OpDoubleLine
	OpUnpadComp
	OpPadComp
	OpFixUnpadComp
	OpFixPadComp
)

var binaryNames = map[BinaryOp]string{
	OpSingleLine:   "@",
	OpDoubleLine:   "@@",
	OpUnpadComp:    "&",
	OpPadComp:      "+",
	OpFixUnpadComp: "!&",
	OpFixPadComp:   "!+",
}

func (op BinaryOp) String() string { return binaryNames[op] }

// Expr is a node in the parsed syntax tree. The node set is closed:
// Null, Index, Text, Unary and Binary are the only implementations.
type Expr interface {
	exprNode()
	// String renders the node as DSL source text that parses back to the
	// same structure.
	String() string
}

// Null represents an empty layout.
type Null struct {
	Pos Position
}

// Index is a placeholder for the n-th caller-supplied argument (0-based).
type Index struct {
	N   int
	Pos Position
}

// Text is a string literal with escapes already resolved.
type Text struct {
	Data string
	Pos  Position
}

// Unary is a prefix combinator applied to one child.
type Unary struct {
	Op    UnaryOp
	Child Expr
	Pos   Position // position of the operator keyword
}

// Binary is an infix combinator over two children.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Pos   Position // position of the operator token
}

func (*Null) exprNode()   {}
func (*Index) exprNode()  {}
func (*Text) exprNode()   {}
func (*Unary) exprNode()  {}
func (*Binary) exprNode() {}

func (e *Null) String() string  { return "null" }
func (e *Index) String() string { return "{" + strconv.Itoa(e.N) + "}" }
func (e *Text) String() string  { return QuoteText(e.Data) }

func (e *Unary) String() string {
	// Only a primary may follow a prefix without parentheses.
	switch e.Child.(type) {
	case *Unary, *Binary:
		return e.Op.String() + " (" + e.Child.String() + ")"
	}
	return e.Op.String() + " " + e.Child.String()
}

func (e *Binary) String() string {
	left := e.Left.String()
	if _, ok := e.Left.(*Binary); ok {
		// A binary left operand needs parentheses, since the operators
		// associate to the right.
		left = "(" + left + ")"
	}
	return left + " " + e.Op.String() + " " + e.Right.String()
}

// QuoteText renders a string as a DSL string literal, escaping the
// characters the grammar requires.
func QuoteText(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case 0:
			sb.WriteString(`\0`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
