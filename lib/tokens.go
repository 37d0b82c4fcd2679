package lib

import "fmt"

type TokenType int

const (
	TokenTypeNumber TokenType = iota
	TokenTypeOperator
	TokenTypeLParen
	TokenTypeRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeNumber:
		return "number"
	case TokenTypeOperator:
		return "operator"
	case TokenTypeLParen:
		return "lparen"
	case TokenTypeRParen:
		return "rparen"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one lexical element of an arithmetic expression. Value is only
// meaningful for numbers and Op only for operators; Text always holds the
// characters the token was read from.
type Token struct {
	Type  TokenType
	Value float64
	Op    rune
	Text  string
	Col   int
}

func numberToken(text string, value float64, col int) Token {
	return Token{Type: TokenTypeNumber, Value: value, Text: text, Col: col}
}

func operatorToken(op rune, col int) Token {
	return Token{Type: TokenTypeOperator, Op: op, Text: string(op), Col: col}
}

func (t Token) String() string {
	return t.Text
}

func (t Token) IsNumber() bool {
	return t.Type == TokenTypeNumber
}

func (t Token) IsOperator() bool {
	return t.Type == TokenTypeOperator
}

func isOperatorChar(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

// Priority returns how tightly an operator binds. Anything that is not
// + or - is treated as multiplicative.
func Priority(op rune) int {
	if op == '+' || op == '-' {
		return 1
	}
	return 2
}
