package lib

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber       = errors.New("malformed number")
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrDivisionByZero        = errors.New("division by zero")
	ErrOverflow              = errors.New("numeric overflow")
	ErrUnexpectedToken       = errors.New("unexpected token")
)

// MalformedNumberError is returned when a run of digits and dots is not a
// valid decimal literal, e.g. "1.2.3" or ".5".
type MalformedNumberError struct {
	Literal string
	Col     int
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q at col %d", e.Literal, e.Col)
}

func (e *MalformedNumberError) Unwrap() error { return ErrMalformedNumber }

// StackUnderflowError is returned when an operator does not have two
// operands, or when evaluation does not end with exactly one value.
type StackUnderflowError struct {
	Token *Token // nil when raised at the end of evaluation
	Depth int
}

func (e *StackUnderflowError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("stack underflow: operator %s at col %d has %d operand(s), needs 2", e.Token, e.Token.Col, e.Depth)
	}
	return fmt.Sprintf("stack underflow: expected 1 value after evaluation, got %d", e.Depth)
}

func (e *StackUnderflowError) Unwrap() error { return ErrStackUnderflow }

type UnbalancedParenthesesError struct {
	Paren rune
	Col   int
}

func (e *UnbalancedParenthesesError) Error() string {
	if e.Paren == ')' {
		return fmt.Sprintf("unbalanced parentheses: ')' at col %d has no matching '('", e.Col)
	}
	return fmt.Sprintf("unbalanced parentheses: '(' at col %d is never closed", e.Col)
}

func (e *UnbalancedParenthesesError) Unwrap() error { return ErrUnbalancedParentheses }

type DivisionByZeroError struct {
	Dividend float64
	Col      int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero at col %d (%v / 0)", e.Col, e.Dividend)
}

func (e *DivisionByZeroError) Unwrap() error { return ErrDivisionByZero }

type OverflowError struct {
	Op  rune
	Col int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numeric overflow: result of '%c' at col %d is not finite", e.Op, e.Col)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s token %q at col %d", e.Token.Type, e.Token.Text, e.Token.Col)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }
