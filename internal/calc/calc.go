// Package calc evaluates arithmetic expressions over decimals written in
// Polish (prefix) notation, such as "* 10 + 1.23 4.56".
package calc

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/govalues/bigdecimal"
)

var (
	// ErrNoTokens is returned for an expression without tokens.
	ErrNoTokens = errors.New("no tokens")
	// ErrNotEnoughOperands is returned when an operator lacks operands.
	ErrNotEnoughOperands = errors.New("not enough operands")
	// ErrUnbalanced is returned when operands are left over after evaluation.
	ErrUnbalanced = errors.New("unbalanced expression")
)

// Evaluate computes the value of the expression.
// The supported operators are "+", "-", "*" and "/".
// Quotients are truncated to scale digits after the decimal point.
func Evaluate(input string, scale int) (bigdecimal.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return bigdecimal.Decimal{}, errors.Wrap(err, "parsing tokens")
	}
	stack, err := processTokens(tokens, scale)
	if err != nil {
		return bigdecimal.Decimal{}, errors.Wrap(err, "processing tokens")
	}
	if len(stack) != 1 {
		return bigdecimal.Decimal{}, errors.Wrapf(ErrUnbalanced, "post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	return tokens, nil
}

// processTokens scans tokens from right to left, so every operator finds
// its operands on top of the stack.
func processTokens(tokens []string, scale int) ([]bigdecimal.Decimal, error) {
	stack := make([]bigdecimal.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token, scale)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "processing token %q", token)
		}
	}
	return stack, nil
}

func processOperator(stack []bigdecimal.Decimal, token string) ([]bigdecimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, ErrNotEnoughOperands
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigdecimal.Decimal
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %s %s\"", left, token, right)
	}
	return append(stack, result), nil
}

func processOperand(stack []bigdecimal.Decimal, token string, scale int) ([]bigdecimal.Decimal, error) {
	d, err := bigdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	d, err = d.WithDefaultScale(scale)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
