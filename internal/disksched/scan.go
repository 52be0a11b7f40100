// File: internal/disksched/scan.go
// Brief: Internal disksched package implementation for 'SCAN policy'.

package disksched

import "sort"

// PolicySCAN names the elevator policy in results and flags.
const PolicySCAN = "scan"

// SCAN sweeps rightward from the head over the sorted requests, reverses at
// the largest requested cylinder, then sweeps leftward over the remainder.
//
// Two quirks of the classic simulator are kept on purpose:
//   - the rightward sweep always runs first, even when the head already sits
//     beyond every request, and
//   - the reversal move to the maximum cylinder is emitted unconditionally, so
//     a zero-distance "Move from X to X" appears when the sweep already ended
//     there, and the travel is double-counted when the head starts past the
//     whole request range.
func SCAN(q *Queue) Result {
	res := Result{Policy: PolicySCAN, Moves: make([]Move, 0, q.Len()+1)}
	if q.Len() == 0 {
		return res
	}
	sorted := q.Requests()
	sort.Ints(sorted)

	cur := q.head
	for _, r := range sorted {
		if r < q.head {
			continue
		}
		m := Move{From: cur, To: r}
		res.Moves = append(res.Moves, m)
		res.Total += m.Distance()
		cur = r
	}

	// Unconditional reversal at the largest requested cylinder.
	rev := Move{From: cur, To: sorted[len(sorted)-1]}
	res.Moves = append(res.Moves, rev)
	res.Total += rev.Distance()
	cur = rev.To

	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] >= q.head {
			continue
		}
		m := Move{From: cur, To: sorted[i]}
		res.Moves = append(res.Moves, m)
		res.Total += m.Distance()
		cur = sorted[i]
	}
	return res
}
