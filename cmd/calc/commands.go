package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/graeme-hill/rpncalc-go/lib"
)

func runTokens(w io.Writer, expression string) error {
	tokens, err := lib.Tokenize(expression)
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(w, "%s\t%s\n", tok.Type, tok.Text)
	}
	return nil
}

func runCompile(w io.Writer, expression string) error {
	rpn, err := lib.Compile(expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rpn)
	return nil
}

func runEval(w io.Writer, cfg Config, expressions []string) error {
	for _, expr := range expressions {
		rpn, err := lib.Compile(expr)
		if err != nil {
			return fmt.Errorf("%q: %w", expr, err)
		}

		result, err := lib.Evaluate(expr)
		if err != nil {
			return fmt.Errorf("%q: %w", expr, err)
		}

		if cfg.ShowRPN {
			fmt.Fprintf(w, "%s\t%s\n", rpn, result)
		} else {
			fmt.Fprintln(w, result)
		}
	}
	return nil
}

// runRepl feeds every input line into a calculator session. A line that
// does not end with the result or clear key is evaluated at its end. A line
// starting with an operator continues from the previous result; a failed
// line is discarded.
func runRepl(r io.Reader, w io.Writer, cfg Config) error {
	session := lib.NewSession()
	scanner := bufio.NewScanner(r)

	fmt.Fprint(w, cfg.Prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 {
			keys := line
			if !strings.HasSuffix(keys, lib.KeyResult) && !strings.HasSuffix(keys, lib.KeyClear) {
				keys += lib.KeyResult
			}

			if err := session.Type(keys); err != nil {
				log.WithError(err).WithField("line", line).Debug("evaluation failed")
				fmt.Fprintf(w, "error: %s\n", err)
				session.Clear()
			} else {
				fmt.Fprintln(w, session.Screen())
			}
		}
		fmt.Fprint(w, cfg.Prompt)
	}

	return scanner.Err()
}
