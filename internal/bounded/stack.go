// File: internal/bounded/stack.go
// Brief: Internal bounded package implementation for 'stack'.

// Package bounded provides a fixed-capacity LIFO container. Unlike the usual
// append-backed stacks, capacity is set at construction and never grows;
// exceeding it is an error rather than a reallocation.
package bounded

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by Push when the stack is already full.
var ErrOverflow = errors.New("stack overflow")

// ErrUnderflow is returned by Pop and Peek when the stack is empty.
var ErrUnderflow = errors.New("stack underflow")

// Stack is a fixed-capacity LIFO container. The zero value is not usable;
// construct one with New. A Stack is owned by a single goroutine.
type Stack[T any] struct {
	items []T
	top   int // index of the top element, -1 when empty
}

// New returns an empty stack that holds at most capacity elements.
func New[T any](capacity int) (*Stack[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("invalid stack capacity %d (must be positive)", capacity)
	}
	return &Stack[T]{items: make([]T, capacity), top: -1}, nil
}

// Push places v on top of the stack. On ErrOverflow the stack is unchanged.
func (s *Stack[T]) Push(v T) error {
	if s.top >= len(s.items)-1 {
		return ErrOverflow
	}
	s.top++
	s.items[s.top] = v
	return nil
}

// Pop removes and returns the top element. On ErrUnderflow the zero value is
// returned and the stack is unchanged.
func (s *Stack[T]) Pop() (T, error) {
	if s.top < 0 {
		var zero T
		return zero, ErrUnderflow
	}
	v := s.items[s.top]
	s.top--
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top < 0 {
		var zero T
		return zero, ErrUnderflow
	}
	return s.items[s.top], nil
}

// Len reports the number of elements currently on the stack.
func (s *Stack[T]) Len() int { return s.top + 1 }

// Cap reports the fixed capacity chosen at construction.
func (s *Stack[T]) Cap() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.top < 0 }

// Full reports whether another Push would overflow.
func (s *Stack[T]) Full() bool { return s.top == len(s.items)-1 }
