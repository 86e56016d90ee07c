package layoutdsl

import (
	"fmt"
	"strings"
)

// Lexer tokenizes layout DSL source text into a stream of tokens.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		ch := l.peek()
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenLParen, Literal: "(", Pos: pos}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenRParen, Literal: ")", Pos: pos}, nil
	case '{':
		l.advance()
		return Token{Kind: TokenLBrace, Literal: "{", Pos: pos}, nil
	case '}':
		l.advance()
		return Token{Kind: TokenRBrace, Literal: "}", Pos: pos}, nil
	case '&':
		l.advance()
		return Token{Kind: TokenComp, Literal: "&", Pos: pos}, nil
	case '+':
		l.advance()
		return Token{Kind: TokenPadComp, Literal: "+", Pos: pos}, nil
	case '@':
		l.advance()
		if !l.atEnd() && l.peek() == '@' {
			l.advance()
			return Token{Kind: TokenDLine, Literal: "@@", Pos: pos}, nil
		}
		return Token{Kind: TokenLine, Literal: "@", Pos: pos}, nil
	case '!':
		l.advance()
		switch l.peek() {
		case '&':
			l.advance()
			return Token{Kind: TokenFixComp, Literal: "!&", Pos: pos}, nil
		case '+':
			l.advance()
			return Token{Kind: TokenFixPad, Literal: "!+", Pos: pos}, nil
		}
		return Token{}, &LexError{ParseError{
			Message: "expected '&' or '+' after '!'",
			Pos:     pos,
		}}
	case '"':
		return l.scanString()
	}

	if isDigit(ch) {
		return l.scanIndex(), nil
	}

	if isLetter(ch) {
		return l.scanKeyword()
	}

	l.advance()
	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unexpected character %q", ch),
		Pos:     pos,
	}}
}

func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated string",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		if ch == '"' {
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{ParseError{
					Message: "unterminated string",
					Pos:     pos,
				}}
			}
			escPos := l.currentPos()
			esc := l.advance()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '0':
				sb.WriteByte(0)
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			default:
				return Token{}, &LexError{ParseError{
					Message: fmt.Sprintf("unknown escape sequence '\\%c'", esc),
					Pos:     escPos,
				}}
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// scanIndex consumes an index literal. A literal "0" never continues with
// more digits, so "01" lexes as two indices and fails in the parser.
func (l *Lexer) scanIndex() Token {
	pos := l.currentPos()
	start := l.pos

	if l.peek() == '0' {
		l.advance()
		return Token{Kind: TokenIndex, Literal: "0", Pos: pos}
	}

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	return Token{Kind: TokenIndex, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func (l *Lexer) scanKeyword() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isLetter(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}, nil
	}

	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unknown keyword %q", literal),
		Pos:     pos,
	}}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
