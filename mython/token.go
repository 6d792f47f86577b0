package mython

import "fmt"

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenNumber TokenType = "NUMBER"
	tokenID     TokenType = "ID"
	tokenString TokenType = "STRING"
	tokenChar   TokenType = "CHAR"

	tokenClass  TokenType = "class"
	tokenReturn TokenType = "return"
	tokenIf     TokenType = "if"
	tokenElse   TokenType = "else"
	tokenDef    TokenType = "def"
	tokenPrint  TokenType = "print"
	tokenAnd    TokenType = "and"
	tokenOr     TokenType = "or"
	tokenNot    TokenType = "not"
	tokenNone   TokenType = "None"
	tokenTrue   TokenType = "True"
	tokenFalse  TokenType = "False"

	tokenNewline TokenType = "NEWLINE"
	tokenIndent  TokenType = "INDENT"
	tokenDedent  TokenType = "DEDENT"
	tokenEOF     TokenType = "EOF"

	tokenEq          TokenType = "=="
	tokenNotEq       TokenType = "!="
	tokenLessOrEq    TokenType = "<="
	tokenGreaterOrEq TokenType = ">="
)

// keywords maps reserved words to their token type. Identifiers that
// don't match any entry lex as tokenID.
var keywords = map[string]TokenType{
	"class":  tokenClass,
	"return": tokenReturn,
	"if":     tokenIf,
	"else":   tokenElse,
	"def":    tokenDef,
	"print":  tokenPrint,
	"and":    tokenAnd,
	"or":     tokenOr,
	"not":    tokenNot,
	"None":   tokenNone,
	"True":   tokenTrue,
	"False":  tokenFalse,
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}

// Token is the lexer's unit of output: a kind tag plus an optional
// payload (Num, Str, or Ch, exactly one of which is meaningful for a
// given Type).
type Token struct {
	Type TokenType
	Str  string
	Num  int64
	Ch   byte
	Pos  Position
}

func numberToken(v int64, pos Position) Token  { return Token{Type: tokenNumber, Num: v, Pos: pos} }
func idToken(v string, pos Position) Token     { return Token{Type: tokenID, Str: v, Pos: pos} }
func stringToken(v string, pos Position) Token { return Token{Type: tokenString, Str: v, Pos: pos} }
func charToken(v byte, pos Position) Token     { return Token{Type: tokenChar, Ch: v, Pos: pos} }
func simpleToken(t TokenType, pos Position) Token { return Token{Type: t, Pos: pos} }

// Is reports whether the token has the given type.
func (t Token) Is(tt TokenType) bool { return t.Type == tt }

// Equal compares tokens by kind and payload, ignoring position —
// the same equality spec.md requires of the token model.
func (t Token) Equal(other Token) bool {
	if t.Type != other.Type {
		return false
	}
	switch t.Type {
	case tokenNumber:
		return t.Num == other.Num
	case tokenID, tokenString:
		return t.Str == other.Str
	case tokenChar:
		return t.Ch == other.Ch
	default:
		return true
	}
}

// String renders the token for diagnostics, e.g. "Number{42}", "Id{foo}",
// or the bare tag name for valueless tokens.
func (t Token) String() string {
	switch t.Type {
	case tokenNumber:
		return fmt.Sprintf("Number{%d}", t.Num)
	case tokenID:
		return fmt.Sprintf("Id{%s}", t.Str)
	case tokenString:
		return fmt.Sprintf("String{%s}", t.Str)
	case tokenChar:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return string(t.Type)
	}
}
