package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	buf := newTokenBuffer()

	buf.Write(numberToken("42", 42, 1))

	tok, done := buf.Next()
	require.False(t, done)
	require.Equal(t, TokenTypeNumber, tok.Type)
	require.Equal(t, "42", tok.Text)
}

func TestNextDoneMulti(t *testing.T) {
	buf := newTokenBuffer()

	buf.Write(numberToken("42", 42, 1))

	_, done := buf.Next()
	require.False(t, done)

	_, done = buf.Next()
	require.True(t, done)

	_, done = buf.Next()
	require.True(t, done)
}

func TestTokensKeepsConsumed(t *testing.T) {
	buf := newTokenBufferFrom([]Token{numberToken("1", 1, 1), operatorToken('+', 2)})
	buf.Write(numberToken("2", 2, 3))

	_, _ = buf.Next()
	require.Len(t, buf.Tokens(), 3)

	tok, done := buf.Next()
	require.False(t, done)
	require.Equal(t, '+', tok.Op)
}
