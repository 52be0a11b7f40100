// File: internal/bounded/stack_test.go
// Brief: Internal bounded package implementation for 'stack tests'.

package bounded

import (
	"errors"
	"testing"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	if _, err := New[int](0); err == nil {
		t.Fatalf("expected error for zero capacity")
	}
	if _, err := New[int](-3); err == nil {
		t.Fatalf("expected error for negative capacity")
	}
}

func TestPushPopLIFOOrder(t *testing.T) {
	s, err := New[int](8)
	if err != nil {
		t.Fatalf("new stack: %v", err)
	}
	values := []int{10, 20, 30, 40, 50}
	for _, v := range values {
		if err := s.Push(v); err != nil {
			t.Fatalf("push %d: %v", v, err)
		}
	}
	if s.Len() != len(values) {
		t.Fatalf("len mismatch, got %d", s.Len())
	}
	for i := len(values) - 1; i >= 0; i-- {
		v, err := s.Pop()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if v != values[i] {
			t.Fatalf("expected %d, got %d", values[i], v)
		}
	}
	if !s.Empty() {
		t.Fatalf("stack should be empty after equal pops")
	}
}

func TestPushOnFullLeavesStateUnchanged(t *testing.T) {
	s, _ := New[int](2)
	if err := s.Push(1); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := s.Push(2); err != nil {
		t.Fatalf("push: %v", err)
	}
	if !s.Full() {
		t.Fatalf("stack should be full")
	}
	if err := s.Push(3); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("overflow must not mutate, len %d", s.Len())
	}
	top, err := s.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if top != 2 {
		t.Fatalf("top changed after failed push, got %d", top)
	}
}

func TestPopAndPeekOnEmpty(t *testing.T) {
	s, _ := New[int](4)
	if _, err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow from pop, got %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow from peek, got %v", err)
	}
	if s.Len() != 0 || !s.Empty() {
		t.Fatalf("failed pop/peek must leave the stack empty")
	}
}

func TestPeekDoesNotMutate(t *testing.T) {
	s, _ := New[string](3)
	if err := s.Push("a"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := s.Push("b"); err != nil {
		t.Fatalf("push: %v", err)
	}
	for i := 0; i < 3; i++ {
		v, err := s.Peek()
		if err != nil {
			t.Fatalf("peek: %v", err)
		}
		if v != "b" {
			t.Fatalf("peek changed the top, got %q", v)
		}
	}
	if s.Len() != 2 {
		t.Fatalf("peek mutated length, got %d", s.Len())
	}
}

func TestCapIsFixed(t *testing.T) {
	s, _ := New[int](5)
	for i := 0; i < 5; i++ {
		if err := s.Push(i); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if s.Cap() != 5 {
		t.Fatalf("cap changed, got %d", s.Cap())
	}
	if err := s.Push(99); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow at capacity, got %v", err)
	}
}
