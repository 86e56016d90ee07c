package layoutdsl

import (
	"fmt"
	"strconv"
)

// binaryOps maps operator tokens to their syntax tree combinators.
var binaryOps = map[TokenKind]BinaryOp{
	TokenLine:    OpSingleLine,
	TokenDLine:   OpDoubleLine,
	TokenComp:    OpUnpadComp,
	TokenPadComp: OpPadComp,
	TokenFixComp: OpFixUnpadComp,
	TokenFixPad:  OpFixPadComp,
}

// unaryOps maps prefix keywords to their syntax tree combinators.
var unaryOps = map[TokenKind]UnaryOp{
	TokenFix:  OpFix,
	TokenGrp:  OpGrp,
	TokenSeq:  OpSeq,
	TokenNest: OpNest,
	TokenPack: OpPack,
}

// Parse parses layout DSL source text and returns its syntax tree.
// Returns a *SyntaxError, *LexError, or *ValueError on failure.
func Parse(src []byte) (Expr, error) {
	p := &parser{lex: NewLexer(src)}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// Reject trailing content (the expression must cover the whole input)
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "end of input",
			Got:        describe(tok),
		}
	}

	return expr, nil
}

type parser struct {
	lex *Lexer
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        describe(tok),
		}
	}
	return tok, nil
}

// parseExpr parses atom (binary_op atom)*. All binary operators share one
// precedence tier and associate to the right, so the right operand is a
// whole expression.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	op, ok := binaryOps[tok.Kind]
	if !ok {
		return left, nil
	}
	_, _ = p.next()

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: op, Left: left, Right: right, Pos: tok.Pos}, nil
}

// parseAtom parses unary_op? primary. At most one prefix may precede a
// primary; stacking requires explicit parentheses.
func (p *parser) parseAtom() (Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	op, ok := unaryOps[tok.Kind]
	if !ok {
		return p.parsePrimary()
	}
	_, _ = p.next()

	child, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return &Unary{Op: op, Child: child, Pos: tok.Pos}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenNull:
		_, _ = p.next()
		return &Null{Pos: tok.Pos}, nil

	case TokenString:
		_, _ = p.next()
		return &Text{Data: tok.Literal, Pos: tok.Pos}, nil

	case TokenLBrace:
		return p.parseVariable()

	case TokenLParen:
		_, _ = p.next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "layout expression",
			Got:        describe(tok),
		}
	}
}

// parseVariable parses '{' index '}'.
func (p *parser) parseVariable() (Expr, error) {
	open, err := p.expect(TokenLBrace)
	if err != nil {
		return nil, err
	}

	idxTok, err := p.expect(TokenIndex)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(idxTok.Literal)
	if err != nil {
		return nil, &ValueError{ParseError{
			Message: fmt.Sprintf("invalid argument index %q: %v", idxTok.Literal, err),
			Pos:     idxTok.Pos,
			Cause:   err,
		}}
	}

	return &Index{N: n, Pos: open.Pos}, nil
}

func describe(tok Token) string {
	if tok.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
}
