// Package heapindex provides a generic, container/heap-backed priority
// queue used to maintain the pool's ordered priority index.
package heapindex

import "container/heap"

// Queue is a priority queue over items of type T, ordered by a caller
// supplied less function. The item at the front of the queue is the one
// for which less(other, front) is false for every other item, i.e. the
// "greatest" element according to less.
type Queue[T any] struct {
	impl *heapImpl[T]
}

// New returns an empty Queue ordered by less. less(a, b) reports whether a
// has lower priority than b; the queue pops the highest-priority item
// first.
func New[T any](less func(a, b T) bool, capacity ...int) *Queue[T] {
	cap0 := 0
	if len(capacity) > 0 {
		cap0 = capacity[0]
	}
	q := &Queue[T]{
		impl: &heapImpl[T]{
			items: make([]T, 0, cap0),
			less:  less,
		},
	}
	heap.Init(q.impl)
	return q
}

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int {
	return q.impl.Len()
}

// Push inserts item into the queue.
func (q *Queue[T]) Push(item T) {
	heap.Push(q.impl, item)
}

// Pop removes and returns the highest-priority item. ok is false if the
// queue was empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.impl.Len() == 0 {
		return item, false
	}
	return heap.Pop(q.impl).(T), true
}

// Peek returns the highest-priority item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.impl.Len() == 0 {
		return item, false
	}
	return q.impl.items[0], true
}

// Remove removes the item at position i (as reported by Do) from the
// queue, preserving heap order.
func (q *Queue[T]) Remove(i int) T {
	return heap.Remove(q.impl, i).(T)
}

// Do calls f for every item currently in the queue, in unspecified order,
// passing each item's current heap index. Do not mutate the queue from
// within f.
func (q *Queue[T]) Do(f func(i int, item T)) {
	for i, item := range q.impl.items {
		f(i, item)
	}
}

// heapImpl adapts a slice and a less function to container/heap.Interface.
// Greatest-by-less sits at index 0 because Less is inverted: we want a
// max-heap, and container/heap implements a min-heap by default.
type heapImpl[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *heapImpl[T]) Len() int { return len(h.items) }

func (h *heapImpl[T]) Less(i, j int) bool {
	return h.less(h.items[j], h.items[i])
}

func (h *heapImpl[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *heapImpl[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapImpl[T]) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return item
}
