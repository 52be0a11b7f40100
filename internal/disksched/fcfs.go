// File: internal/disksched/fcfs.go
// Brief: Internal disksched package implementation for 'FCFS policy'.

package disksched

// PolicyFCFS names the first-come-first-served policy in results and flags.
const PolicyFCFS = "fcfs"

// FCFS services the queue strictly in arrival order. The head position counts
// as the first current position, so the total is the running sum of absolute
// deltas between consecutive serviced cylinders.
func FCFS(q *Queue) Result {
	res := Result{Policy: PolicyFCFS, Moves: make([]Move, 0, q.Len())}
	cur := q.head
	for _, r := range q.requests {
		m := Move{From: cur, To: r}
		res.Moves = append(res.Moves, m)
		res.Total += m.Distance()
		cur = r
	}
	return res
}
