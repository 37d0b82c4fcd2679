package lib

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Compile converts an infix expression into Reverse Polish Notation with
// the tokens separated by single spaces, e.g. "1+2*3" becomes "1 2 3 * +".
func Compile(expression string) (string, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return "", err
	}

	rpn, err := CompileTokens(tokens)
	if err != nil {
		log.WithError(err).WithField("expression", expression).Debug("failed to compile")
		return "", err
	}

	out := joinTokens(rpn)
	log.WithFields(logrus.Fields{
		"expression": expression,
		"rpn":        out,
	}).Debug("compiled")
	return out, nil
}

// CompileTokens reorders infix tokens into postfix order using the
// shunting-yard algorithm. All operators are binary and left associative.
func CompileTokens(tokens []Token) ([]Token, error) {
	c := compiler{
		reader: newTokenBufferFrom(tokens),
		output: []Token{},
		stack:  []Token{},
	}
	return c.scan()
}

type compiler struct {
	reader tokenReader
	output []Token
	stack  []Token
}

func (c *compiler) scan() ([]Token, error) {
	for {
		tok, done := c.reader.Next()
		if done {
			break
		}

		switch tok.Type {
		case TokenTypeNumber:
			c.output = append(c.output, tok)
		case TokenTypeOperator:
			c.scanOperator(tok)
		case TokenTypeLParen:
			c.push(tok)
		case TokenTypeRParen:
			if err := c.scanRParen(tok); err != nil {
				return nil, err
			}
		default:
			return nil, &UnexpectedTokenError{Token: tok}
		}
	}

	for len(c.stack) > 0 {
		top := c.pop()
		if top.Type == TokenTypeLParen {
			return nil, &UnbalancedParenthesesError{Paren: '(', Col: top.Col}
		}
		c.output = append(c.output, top)
	}

	return c.output, nil
}

func (c *compiler) scanOperator(tok Token) {
	for {
		top, ok := c.top()
		if !ok || !top.IsOperator() || Priority(top.Op) < Priority(tok.Op) {
			break
		}
		c.output = append(c.output, c.pop())
	}
	c.push(tok)
}

func (c *compiler) scanRParen(tok Token) error {
	for {
		top, ok := c.top()
		if !ok {
			return &UnbalancedParenthesesError{Paren: ')', Col: tok.Col}
		}
		c.pop()
		if top.Type == TokenTypeLParen {
			return nil
		}
		c.output = append(c.output, top)
	}
}

func (c *compiler) top() (Token, bool) {
	if len(c.stack) == 0 {
		return Token{}, false
	}
	return c.stack[len(c.stack)-1], true
}

func (c *compiler) push(tok Token) {
	c.stack = append(c.stack, tok)
}

func (c *compiler) pop() Token {
	tok := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return tok
}

func joinTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}
