// File: internal/disksched/queue.go
// Brief: Internal disksched package implementation for 'request queue'.

// Package disksched simulates classic disk head scheduling policies (FCFS and
// SCAN) over a bounded queue of cylinder requests. Policies report the full
// move-by-move trace alongside the cumulative head movement so callers can
// render or diff the traces.
package disksched

import "fmt"

// DefaultMaxRequests mirrors the fixed request buffer of the classic
// simulator; callers may raise or lower the bound per queue.
const DefaultMaxRequests = 100

// CapacityError reports a request set larger than the queue bound.
type CapacityError struct {
	Count int
	Max   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("request queue holds %d cylinders (maximum %d)", e.Count, e.Max)
}

// Queue is an immutable set of cylinder requests plus the initial head
// position. Build one with NewQueue; the request order is preserved because
// FCFS services it literally.
type Queue struct {
	head     int
	requests []int
}

// NewQueue validates the request count against max (DefaultMaxRequests when
// max is zero or negative) and copies the requests so later mutation of the
// caller's slice cannot change the queue.
func NewQueue(head int, requests []int, max int) (*Queue, error) {
	if max <= 0 {
		max = DefaultMaxRequests
	}
	if len(requests) > max {
		return nil, &CapacityError{Count: len(requests), Max: max}
	}
	q := &Queue{head: head, requests: make([]int, len(requests))}
	copy(q.requests, requests)
	return q, nil
}

// Head returns the initial head position.
func (q *Queue) Head() int { return q.head }

// Len returns the number of pending requests.
func (q *Queue) Len() int { return len(q.requests) }

// Requests returns a copy of the request sequence in arrival order.
func (q *Queue) Requests() []int {
	out := make([]int, len(q.requests))
	copy(out, q.requests)
	return out
}

// Move is a single head repositioning from one cylinder to another.
type Move struct {
	From int
	To   int
}

// Distance is the head travel for the move.
func (m Move) Distance() int {
	return abs(m.To - m.From)
}

func (m Move) String() string {
	return fmt.Sprintf("Move from %d to %d", m.From, m.To)
}

// Result is the full trace of one policy run.
type Result struct {
	Policy string
	Moves  []Move
	Total  int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
