// File: internal/expr/postfix.go
// Brief: Internal expr package implementation for 'infix to postfix'.

// Package expr holds the two single-pass expression stack machines: an
// infix-to-postfix converter and a prefix evaluator. Both run on the bounded
// stack container and keep the exact semantics of the classic exercises,
// including their known departures from textbook behavior.
package expr

import (
	"fmt"
	"strings"

	"github.com/example/oslab/internal/bounded"
)

// InfixToPostfix converts an infix expression over uppercase operands into
// postfix notation in a single left-to-right pass.
//
// The precedence handling is knowingly incomplete versus standard
// shunting-yard conversion: '+' and '-' pop every stacked operator down to a
// '(' before pushing, while '*' and '/' pop only stacked '*' or '/'. The first
// operator seen on an empty stack is pushed without inspection, and any
// unrecognized character is silently dropped once the stack is non-empty.
// Callers get the classic output, quirks included.
func InfixToPostfix(infix string) (string, error) {
	ops, err := bounded.New[byte](len(infix) + 1)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for i := 0; i < len(infix); i++ {
		ch := infix[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			out.WriteByte(ch)
		case ch == '(':
			if err := ops.Push(ch); err != nil {
				return "", err
			}
		case ch == ')':
			for {
				top, err := ops.Pop()
				if err != nil {
					return "", fmt.Errorf("unbalanced ')' at offset %d: %w", i, err)
				}
				if top == '(' {
					break
				}
				out.WriteByte(top)
			}
		default:
			if ops.Empty() {
				if err := ops.Push(ch); err != nil {
					return "", err
				}
				continue
			}
			switch ch {
			case '+', '-':
				for !ops.Empty() {
					top, _ := ops.Peek()
					if top == '(' {
						break
					}
					if _, err := ops.Pop(); err != nil {
						return "", err
					}
					out.WriteByte(top)
				}
				if err := ops.Push(ch); err != nil {
					return "", err
				}
			case '*', '/':
				for !ops.Empty() {
					top, _ := ops.Peek()
					if top != '*' && top != '/' {
						break
					}
					if _, err := ops.Pop(); err != nil {
						return "", err
					}
					out.WriteByte(top)
				}
				if err := ops.Push(ch); err != nil {
					return "", err
				}
			}
			// anything else is dropped, as the classic converter does
		}
	}
	for !ops.Empty() {
		top, err := ops.Pop()
		if err != nil {
			return "", err
		}
		out.WriteByte(top)
	}
	return out.String(), nil
}
