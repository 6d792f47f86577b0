package mython

// Cursor walks a finite, pre-lexed token sequence. It is the parser's
// only window onto the lexer: Current/Next/Expect/ExpectNext mirror the
// contract spec.md §4.B assigns to the lexer's token stream.
type Cursor struct {
	tokens []Token
	pos    int
}

// NewCursor wraps a token slice produced by Lex. The slice must end in
// an Eof token.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Current returns the token the cursor is positioned on.
func (c *Cursor) Current() Token {
	return c.tokens[c.pos]
}

// Next advances the cursor and returns the new current token. Advancing
// past the end saturates on the trailing Eof.
func (c *Cursor) Next() Token {
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return c.Current()
}

// Expect asserts that the current token has the given type, raising a
// LexerError otherwise.
func (c *Cursor) Expect(tt TokenType) (Token, error) {
	tok := c.Current()
	if tok.Type != tt {
		return tok, &LexerError{Pos: tok.Pos, Msg: "expected " + string(tt) + ", got " + tok.String()}
	}
	return tok, nil
}

// ExpectChar asserts that the current token is a Char token carrying the
// given byte value.
func (c *Cursor) ExpectChar(v byte) error {
	tok := c.Current()
	if tok.Type != tokenChar || tok.Ch != v {
		return &LexerError{Pos: tok.Pos, Msg: "expected '" + string(v) + "', got " + tok.String()}
	}
	return nil
}

// ExpectNext advances the cursor, then asserts the new current token's type.
func (c *Cursor) ExpectNext(tt TokenType) (Token, error) {
	c.Next()
	return c.Expect(tt)
}

// ExpectNextChar advances the cursor, then asserts the new current token
// is a Char token carrying the given byte value.
func (c *Cursor) ExpectNextChar(v byte) error {
	c.Next()
	return c.ExpectChar(v)
}
