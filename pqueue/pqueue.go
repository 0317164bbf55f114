package pqueue

import (
	"github.com/zyedidia/generic/heap"
)

// CompareFunc orders two items: negative if a sorts before b, zero if equal,
// positive otherwise.
type CompareFunc[T any] func(a, b T) int

// Queue is a binary min-heap of T ordered by a CompareFunc.
type Queue[T any] struct {
	heap     *heap.Heap[T]
	less     func(a, b T) bool
	capacity int
}

// New returns an empty queue ordered by compare with room for capacity items.
// A nil compare panics: the ordering is part of the queue's contract.
func New[T any](compare CompareFunc[T], capacity int) *Queue[T] {
	if compare == nil {
		panic("pqueue: nil compare function")
	}
	if capacity < 0 {
		capacity = 0
	}

	q := &Queue[T]{
		less:     func(a, b T) bool { return compare(a, b) < 0 },
		capacity: capacity,
	}
	q.Clear()

	return q
}

// Len returns the number of queued items, stale duplicates included.
func (q *Queue[T]) Len() int { return q.heap.Size() }

// Enqueue adds item and sifts it up.
func (q *Queue[T]) Enqueue(item T) { q.heap.Push(item) }

// Dequeue removes and returns the minimum item. ok is false on an empty queue.
func (q *Queue[T]) Dequeue() (item T, ok bool) { return q.heap.Pop() }

// Peek returns the minimum item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) { return q.heap.Peek() }

// Clear empties the queue. The high-water mark of the previous run becomes the
// reserved capacity of the next one.
func (q *Queue[T]) Clear() {
	if q.heap != nil && q.heap.Size() > q.capacity {
		q.capacity = q.heap.Size()
	}
	q.heap = heap.FromSlice(q.less, make([]T, 0, q.capacity))
}
