package lib

import (
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

var numberLiteral = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Tokenize splits an infix expression into numbers, operators and
// parentheses. Characters that are none of these (whitespace included) are
// skipped, but they still end the number being read.
func Tokenize(expression string) ([]Token, error) {
	buffer := newTokenBuffer()
	if err := lex(expression, buffer.Write); err != nil {
		log.WithError(err).WithField("expression", expression).Debug("failed to tokenize")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"expression": expression,
		"tokens":     len(buffer.Tokens()),
	}).Debug("tokenized")
	return buffer.Tokens(), nil
}

func lex(expression string, emit func(Token)) error {
	l := newLexer(expression, emit)
	return l.scan()
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	numberStartIndex int
	emitCallback     func(Token)
}

func newLexer(expression string, emit func(Token)) *lexer {
	expr := []rune(expression)
	return &lexer{
		expr:             expr,
		length:           len(expr),
		currentCharIndex: 0,
		numberStartIndex: -1,
		emitCallback:     emit,
	}
}

func (l *lexer) advance() (rune, bool) {
	if l.currentCharIndex >= l.length {
		return 0, false
	}
	ch := l.expr[l.currentCharIndex]
	l.currentCharIndex++
	return ch, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	index := l.currentCharIndex
	ch, ok := l.advance()
	if !ok {
		return false, l.endNumber(l.length)
	}

	if isDigit(ch) || ch == '.' {
		if l.numberStartIndex < 0 {
			l.numberStartIndex = index
		}
		return true, nil
	}

	if err := l.endNumber(index); err != nil {
		return false, err
	}

	col := index + 1
	switch {
	case isOperatorChar(ch):
		l.emitCallback(operatorToken(ch, col))
	case ch == '(':
		l.emitCallback(Token{Type: TokenTypeLParen, Text: "(", Col: col})
	case ch == ')':
		l.emitCallback(Token{Type: TokenTypeRParen, Text: ")", Col: col})
	default:
		// not part of the grammar, dropped
	}

	return true, nil
}

// endNumber emits the pending number literal ending before index, if any.
func (l *lexer) endNumber(index int) error {
	if l.numberStartIndex < 0 {
		return nil
	}
	start := l.numberStartIndex
	l.numberStartIndex = -1

	text := string(l.expr[start:index])
	value, err := parseNumber(text)
	if err != nil {
		return &MalformedNumberError{Literal: text, Col: start + 1}
	}
	l.emitCallback(numberToken(text, value, start+1))
	return nil
}

func parseNumber(text string) (float64, error) {
	if !numberLiteral.MatchString(text) {
		return 0, ErrMalformedNumber
	}
	// ParseFloat only fails here on values out of float64 range.
	return strconv.ParseFloat(text, 64)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
