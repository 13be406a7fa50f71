// Package priority implements a generic max-first priority queue. The queue
// holds a multiset of (value, priority) pairs, duplicates welcome, and every
// dequeue returns a value whose priority is maximal among the pairs still
// held. Ties are stable: values sharing a priority dequeue in the order they
// were enqueued.
//
// The queue is an array-backed binary heap. Stability comes from a monotonic
// sequence number stamped on each entry at enqueue time and used as the
// secondary sort key, so the heap order is a strict total order and the
// structure stays deterministic.
//
// Key features:
//   - Generic over any value type and any ordered priority type
//   - O(log n) enqueue and dequeue, O(1) peek
//   - Stable FIFO ordering among equal priorities
//   - Absence reported as (zero, false), never as an error
//
// Basic usage:
//
//	q := priority.New[string, int]()
//	q.Enqueue("Defend Village", 2)
//	q.Enqueue("Attack Orcs", 1)
//	q.Enqueue("Guard Gate", 2)
//
//	for v := range q.Drain() {
//	    fmt.Println(v)
//	}
//	// Defend Village
//	// Guard Gate
//	// Attack Orcs
//
// A Queue is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every operation with an external lock.
package priority
