package lib

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Evaluate computes an infix expression and returns the result with exactly
// two digits after the decimal point.
func Evaluate(expression string) (string, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return "", err
	}

	// Compiled tokens keep the columns of the input expression, which
	// re-tokenizing the RPN text would lose.
	rpn, err := CompileTokens(tokens)
	if err != nil {
		return "", err
	}

	value, err := EvaluateRPN(rpn)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"expression": expression,
			"rpn":        joinTokens(rpn),
		}).Debug("failed to evaluate")
		return "", err
	}

	result := FormatResult(value)
	log.WithFields(logrus.Fields{
		"expression": expression,
		"rpn":        joinTokens(rpn),
		"result":     result,
	}).Debug("evaluated")
	return result, nil
}

// EvaluateRPN runs a postfix token sequence on an operand stack. For
// the stack [..., a, b] an operator computes a op b.
func EvaluateRPN(tokens []Token) (float64, error) {
	reader := newTokenBufferFrom(tokens)
	stack := []float64{}

	for {
		tok, done := reader.Next()
		if done {
			break
		}

		switch tok.Type {
		case TokenTypeNumber:
			stack = append(stack, tok.Value)
		case TokenTypeOperator:
			if len(stack) < 2 {
				return 0, &StackUnderflowError{Token: &tok, Depth: len(stack)}
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			v, err := apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			return 0, &UnexpectedTokenError{Token: tok}
		}
	}

	if len(stack) != 1 {
		return 0, &StackUnderflowError{Depth: len(stack)}
	}
	return stack[0], nil
}

func apply(tok Token, a, b float64) (float64, error) {
	var v float64
	switch tok.Op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b == 0 {
			return 0, &DivisionByZeroError{Dividend: a, Col: tok.Col}
		}
		v = a / b
	default:
		return 0, &UnexpectedTokenError{Token: tok}
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &OverflowError{Op: tok.Op, Col: tok.Col}
	}
	return v, nil
}

// FormatResult renders a value in fixed-point notation with two decimals.
// Negative zero, and negatives that round to zero, print as "0.00".
func FormatResult(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
