package layoutdsl

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenString  // "..." with escape processing
	TokenIndex   // 0 | [1-9][0-9]*
	TokenLParen  // (
	TokenRParen  // )
	TokenLBrace  // {
	TokenRBrace  // }
	TokenLine    // @
	TokenDLine   // @@
	TokenComp    // &
	TokenPadComp // +
	TokenFixComp // !&
	TokenFixPad  // !+

	// Keywords (letter runs checked against the keyword map)
	TokenNull // null
	TokenFix  // fix
	TokenGrp  // grp
	TokenSeq  // seq
	TokenNest // nest
	TokenPack // pack
)

var tokenNames = map[TokenKind]string{
	TokenEOF:     "EOF",
	TokenString:  "string",
	TokenIndex:   "index",
	TokenLParen:  "'('",
	TokenRParen:  "')'",
	TokenLBrace:  "'{'",
	TokenRBrace:  "'}'",
	TokenLine:    "'@'",
	TokenDLine:   "'@@'",
	TokenComp:    "'&'",
	TokenPadComp: "'+'",
	TokenFixComp: "'!&'",
	TokenFixPad:  "'!+'",
	TokenNull:    "'null'",
	TokenFix:     "'fix'",
	TokenGrp:     "'grp'",
	TokenSeq:     "'seq'",
	TokenNest:    "'nest'",
	TokenPack:    "'pack'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     Position
}

// keywords maps keyword strings to their token kinds.
var keywords = map[string]TokenKind{
	"null": TokenNull,
	"fix":  TokenFix,
	"grp":  TokenGrp,
	"seq":  TokenSeq,
	"nest": TokenNest,
	"pack": TokenPack,
}
