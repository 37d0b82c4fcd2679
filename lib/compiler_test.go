package lib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCompilePrecedence(t *testing.T) {
	rpn, err := Compile("1+2*3")
	require.NoError(t, err)
	require.Equal(t, "1 2 3 * +", rpn)
}

func TestCompileParentheses(t *testing.T) {
	rpn, err := Compile("(1+2)*3")
	require.NoError(t, err)
	require.Equal(t, "1 2 + 3 *", rpn)
}

func TestCompileLeftAssociative(t *testing.T) {
	rpn, err := Compile("10-2-3")
	require.NoError(t, err)
	require.Equal(t, "10 2 - 3 -", rpn)

	rpn, err = Compile("20/2*5")
	require.NoError(t, err)
	require.Equal(t, "20 2 / 5 *", rpn)
}

func TestCompileNested(t *testing.T) {
	rpn, err := Compile("((1.5 + 2) * (3 - 4)) / 5")
	require.NoError(t, err)
	require.Equal(t, "1.5 2 + 3 4 - * 5 /", rpn)
}

func TestCompileEmpty(t *testing.T) {
	rpn, err := Compile("")
	require.NoError(t, err)
	require.Equal(t, "", rpn)
}

func TestCompileIncomplete(t *testing.T) {
	// not validated here, the evaluator reports it
	rpn, err := Compile("3+")
	require.NoError(t, err)
	require.Equal(t, "3 +", rpn)
}

func TestCompileUnmatchedRParen(t *testing.T) {
	_, err := Compile("1+2)*3")
	var unbalanced *UnbalancedParenthesesError
	require.ErrorAs(t, err, &unbalanced)
	require.Equal(t, ')', unbalanced.Paren)
	require.Equal(t, 4, unbalanced.Col)
	require.ErrorIs(t, err, ErrUnbalancedParentheses)
}

func TestCompileUnclosedLParen(t *testing.T) {
	_, err := Compile("2*(1+(3")
	var unbalanced *UnbalancedParenthesesError
	require.ErrorAs(t, err, &unbalanced)
	require.Equal(t, '(', unbalanced.Paren)
	require.Equal(t, 6, unbalanced.Col)
}

func TestCompileMalformedNumber(t *testing.T) {
	_, err := Compile("1.2.3*2")
	require.ErrorIs(t, err, ErrMalformedNumber)
}

func TestCompileTokensKeepsTokens(t *testing.T) {
	tokens, err := Tokenize("2*(3+4)")
	require.NoError(t, err)

	rpn, err := CompileTokens(tokens)
	require.NoError(t, err)

	want := []Token{
		numberToken("2", 2, 1),
		numberToken("3", 3, 4),
		numberToken("4", 4, 6),
		operatorToken('+', 5),
		operatorToken('*', 2),
	}
	if diff := cmp.Diff(want, rpn); diff != "" {
		t.Errorf("CompileTokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileOutputReTokenizes(t *testing.T) {
	rpn, err := Compile("7-(2.5*2)/4+1")
	require.NoError(t, err)

	tokens, err := Tokenize(rpn)
	require.NoError(t, err)
	require.Equal(t, rpn, joinTokens(tokens))
}

func TestPriority(t *testing.T) {
	require.Equal(t, 1, Priority('+'))
	require.Equal(t, 1, Priority('-'))
	require.Equal(t, 2, Priority('*'))
	require.Equal(t, 2, Priority('/'))
}
