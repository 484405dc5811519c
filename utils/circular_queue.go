package utils

import (
	"iter"

	"github.com/oomph-ac/stride/assert"
)

// CircularQueue keeps the last n items appended to it, dropping the oldest one once full.
type CircularQueue[T any] struct {
	items []T
	next  int
	full  bool
}

// NewCircularQueue returns an empty queue keeping up to capacity items. capacity must be positive.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	assert.IsTrue(capacity > 0, "utils.NewCircularQueue: capacity %d", capacity)
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Append adds an item, overwriting the oldest one if the queue is full.
func (q *CircularQueue[T]) Append(item T) {
	q.items[q.next] = item
	q.next = (q.next + 1) % len(q.items)
	if q.next == 0 {
		q.full = true
	}
}

// Len ...
func (q *CircularQueue[T]) Len() int {
	if q.full {
		return len(q.items)
	}
	return q.next
}

// Last returns the most recently appended item, if any.
func (q *CircularQueue[T]) Last() (item T, ok bool) {
	if q.Len() == 0 {
		return item, false
	}
	return q.items[(q.next-1+len(q.items))%len(q.items)], true
}

// Iter iterates the queue from the oldest to the newest item.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		start := 0
		if q.full {
			start = q.next
		}
		for i := range q.Len() {
			if !yield(q.items[(start+i)%len(q.items)]) {
				return
			}
		}
	}
}
