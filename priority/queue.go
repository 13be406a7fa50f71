package priority

import (
	"cmp"
	"iter"
)

// entry is a queued value with its priority and arrival stamp.
type entry[T any, P cmp.Ordered] struct {
	value T
	pri   P
	seq   uint64
}

// Queue implements a max-first priority queue using a binary heap. The zero
// value is an empty queue ready for use.
type Queue[T any, P cmp.Ordered] struct {
	entries []entry[T, P]
	nextSeq uint64
}

// New creates an empty queue for values of type T prioritized by P.
func New[T any, P cmp.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{}
}

// Len returns the number of queued values.
func (q *Queue[T, P]) Len() int {
	return len(q.entries)
}

// Enqueue adds value with the given priority. Entries enqueued with equal
// priorities keep their arrival order across dequeues.
func (q *Queue[T, P]) Enqueue(value T, pri P) {
	q.entries = append(q.entries, entry[T, P]{value: value, pri: pri, seq: q.nextSeq})
	q.nextSeq++
	q.up(len(q.entries) - 1)
}

// Dequeue removes and returns a value with the highest priority currently
// held, the earliest-enqueued one when several share it. The second return
// is false if the queue is empty.
func (q *Queue[T, P]) Dequeue() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}

	top := q.entries[0].value
	last := len(q.entries) - 1
	q.entries[0] = q.entries[last]
	q.entries[last] = entry[T, P]{} // release the value for GC
	q.entries = q.entries[:last]
	if last > 0 {
		q.down(0)
	}

	return top, true
}

// Peek returns the value Dequeue would return next without removing it.
func (q *Queue[T, P]) Peek() (T, bool) {
	if len(q.entries) == 0 {
		var zero T
		return zero, false
	}
	return q.entries[0].value, true
}

// Drain returns an iterator that dequeues until the queue is empty. The
// sequence is lazy: values are removed one at a time as the caller advances,
// and stopping early leaves the remainder queued.
func (q *Queue[T, P]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Dequeue()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// before reports whether the entry at index i must surface ahead of the
// entry at index j: higher priority first, lower sequence number on ties.
func (q *Queue[T, P]) before(i, j int) bool {
	if c := cmp.Compare(q.entries[i].pri, q.entries[j].pri); c != 0 {
		return c > 0
	}
	return q.entries[i].seq < q.entries[j].seq
}

// swap swaps entries at index i and j.
func (q *Queue[T, P]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

// up moves the entry at index i up to its proper position.
func (q *Queue[T, P]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.before(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the entry at index i down to its proper position.
func (q *Queue[T, P]) down(i int) {
	for {
		first := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.entries) && q.before(left, first) {
			first = left
		}
		if right < len(q.entries) && q.before(right, first) {
			first = right
		}

		if first == i {
			break
		}

		q.swap(i, first)
		i = first
	}
}
