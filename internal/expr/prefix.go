// File: internal/expr/prefix.go
// Brief: Internal expr package implementation for 'prefix evaluation'.

package expr

import (
	"errors"
	"fmt"

	"github.com/example/oslab/internal/bounded"
)

// ErrDivideByZero is returned when a '/' operator meets a zero divisor.
var ErrDivideByZero = errors.New("division by zero")

// EvalPrefix evaluates a prefix expression of single-digit operands in one
// right-to-left pass. An operator pops two operands and the first pop is the
// left operand, so "-52" is 5-2, not 2-5. Characters other than digits and
// the four operators still consume two operands and push nothing, matching
// the classic evaluator; malformed expressions surface as underflow errors
// instead of reading garbage.
func EvalPrefix(prefix string) (int, error) {
	operands, err := bounded.New[int](len(prefix) + 1)
	if err != nil {
		return 0, err
	}
	for i := len(prefix) - 1; i >= 0; i-- {
		ch := prefix[i]
		if ch >= '0' && ch <= '9' {
			if err := operands.Push(int(ch - '0')); err != nil {
				return 0, err
			}
			continue
		}
		a, err := operands.Pop()
		if err != nil {
			return 0, fmt.Errorf("operator %q at offset %d needs two operands: %w", ch, i, err)
		}
		b, err := operands.Pop()
		if err != nil {
			return 0, fmt.Errorf("operator %q at offset %d needs two operands: %w", ch, i, err)
		}
		switch ch {
		case '+':
			err = operands.Push(a + b)
		case '-':
			err = operands.Push(a - b)
		case '*':
			err = operands.Push(a * b)
		case '/':
			if b == 0 {
				return 0, fmt.Errorf("operator %q at offset %d: %w", ch, i, ErrDivideByZero)
			}
			err = operands.Push(a / b)
		}
		if err != nil {
			return 0, err
		}
	}
	result, err := operands.Peek()
	if err != nil {
		return 0, fmt.Errorf("empty expression: %w", err)
	}
	return result, nil
}
