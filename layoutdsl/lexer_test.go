package layoutdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	lex := NewLexer([]byte(src))
	var tokens []Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"@", TokenLine},
		{"@@", TokenDLine},
		{"&", TokenComp},
		{"+", TokenPadComp},
		{"!&", TokenFixComp},
		{"!+", TokenFixPad},
		{"(", TokenLParen},
		{")", TokenRParen},
		{"{", TokenLBrace},
		{"}", TokenRBrace},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.input, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"null", TokenNull},
		{"fix", TokenFix},
		{"grp", TokenGrp},
		{"seq", TokenSeq},
		{"nest", TokenNest},
		{"pack", TokenPack},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, tt.kind, tokens[0].Kind, "input: %s", tt.input)
	}
}

func TestLexerUnknownKeyword(t *testing.T) {
	lex := NewLexer([]byte("group"))
	_, err := lex.Next()
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\\b"`, `a\b`},
		{`"line1\nline2"`, "line1\nline2"},
		{`"cr\rhere"`, "cr\rhere"},
		{`"tab\there"`, "tab\there"},
		{`"nul\0byte"`, "nul\x00byte"},
		{`"it\'s"`, "it's"},
		{`"spaces stay put"`, "spaces stay put"},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenString, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerEscapeSequences(t *testing.T) {
	// \n, \t, \\ resolve to exactly three characters.
	tokens := collectTokens(t, `"\n\t\\"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "\n\t\\", tokens[0].Literal)
}

func TestLexerUnknownEscape(t *testing.T) {
	lex := NewLexer([]byte(`"\x"`))
	_, err := lex.Next()
	require.Error(t, err)
	assert.IsType(t, &LexError{}, err)
}

func TestLexerUnterminatedString(t *testing.T) {
	for _, src := range []string{`"hello`, `"hello\`} {
		lex := NewLexer([]byte(src))
		_, err := lex.Next()
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
	}
}

func TestLexerIndices(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"0", "0"},
		{"7", "7"},
		{"42", "42"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		tokens := collectTokens(t, tt.input)
		require.Len(t, tokens, 2, "input: %s", tt.input)
		assert.Equal(t, TokenIndex, tokens[0].Kind, "input: %s", tt.input)
		assert.Equal(t, tt.literal, tokens[0].Literal, "input: %s", tt.input)
	}
}

func TestLexerLeadingZeroSplits(t *testing.T) {
	// "01" is not a valid index; it lexes as "0" followed by "1".
	tokens := collectTokens(t, "01")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenIndex, tokens[0].Kind)
	assert.Equal(t, "0", tokens[0].Literal)
	assert.Equal(t, TokenIndex, tokens[1].Kind)
	assert.Equal(t, "1", tokens[1].Literal)
}

func TestLexerVariable(t *testing.T) {
	tokens := collectTokens(t, "{12}")
	expected := []TokenKind{TokenLBrace, TokenIndex, TokenRBrace, TokenEOF}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d", i)
	}
	assert.Equal(t, "12", tokens[1].Literal)
}

func TestLexerWhitespace(t *testing.T) {
	tokens := collectTokens(t, " \t\n\r\n null \t ")
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenNull, tokens[0].Kind)
}

func TestLexerPosition(t *testing.T) {
	tokens := collectTokens(t, "null\n& +")
	require.Len(t, tokens, 4) // null, &, +, EOF
	assert.Equal(t, 1, tokens[0].Pos.Line)
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 2, tokens[1].Pos.Line)
	assert.Equal(t, 1, tokens[1].Pos.Column)
	assert.Equal(t, 2, tokens[2].Pos.Line)
	assert.Equal(t, 3, tokens[2].Pos.Column)
	assert.Equal(t, 7, tokens[2].Pos.Offset)
}

func TestLexerEmpty(t *testing.T) {
	tokens := collectTokens(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Kind)
}

func TestLexerInvalidChar(t *testing.T) {
	for _, src := range []string{":", "#", "!", "!x"} {
		lex := NewLexer([]byte(src))
		_, err := lex.Next()
		require.Error(t, err, "input: %s", src)
		assert.IsType(t, &LexError{}, err, "input: %s", src)
	}
}

func TestLexerFullExpression(t *testing.T) {
	tokens := collectTokens(t, `fix "a" + ({0} @@ null)`)
	expected := []TokenKind{
		TokenFix, TokenString, TokenPadComp,
		TokenLParen, TokenLBrace, TokenIndex, TokenRBrace,
		TokenDLine, TokenNull, TokenRParen, TokenEOF,
	}
	require.Len(t, tokens, len(expected))
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Kind, "token %d: %s", i, tok.Literal)
	}
	assert.Equal(t, "a", tokens[1].Literal)
	assert.Equal(t, "0", tokens[5].Literal)
}

func TestLexerPeek(t *testing.T) {
	lex := NewLexer([]byte("null @"))

	// Peek should not advance
	tok, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, TokenNull, tok.Kind)

	// Peek again returns the same token
	tok2, err := lex.Peek()
	require.NoError(t, err)
	assert.Equal(t, tok, tok2)

	// Next consumes the peeked token
	tok3, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenNull, tok3.Kind)

	// Next should now return @
	tok4, err := lex.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenLine, tok4.Kind)
}
