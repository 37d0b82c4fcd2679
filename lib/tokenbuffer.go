package lib

type tokenBuffer struct {
	tokens []Token
	pos    int
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens: []Token{},
		pos:    0,
	}
}

func newTokenBufferFrom(tokens []Token) *tokenBuffer {
	return &tokenBuffer{tokens: tokens, pos: 0}
}

func (tb *tokenBuffer) Next() (tok Token, done bool) {
	if tb.pos >= len(tb.tokens) {
		return Token{}, true
	}
	tok = tb.tokens[tb.pos]
	tb.pos++
	return tok, false
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.tokens = append(tb.tokens, tok)
}

// Tokens returns everything written so far, including already consumed
// tokens.
func (tb *tokenBuffer) Tokens() []Token {
	return tb.tokens
}
