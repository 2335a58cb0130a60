package collections

import "container/heap"

// Less reports whether a belongs above b in a Heap.
type Less[E any] func(a, b E) bool

// Heap is a binary heap ordered by a caller-supplied comparator:
// less(a, b) == true means a is popped before b.
//
// There is no decrease-key. To lower a priority, push a fresh entry and let
// the caller skip the stale one when it surfaces.
type Heap[E any] struct {
	items itemHeap[E]
}

// NewHeap returns an empty heap ordered by less. Panics if less is nil.
func NewHeap[E any](less func(a, b E) bool) *Heap[E] {
	if less == nil {
		panic("collections: NewHeap(nil)")
	}
	return &Heap[E]{items: itemHeap[E]{less: less}}
}

// Push adds e. Complexity: O(log n).
func (h *Heap[E]) Push(e E) {
	heap.Push(&h.items, e)
}

// Pop removes and returns the top element. Callers must check IsEmpty first;
// popping an empty heap panics. Complexity: O(log n).
func (h *Heap[E]) Pop() E {
	if len(h.items.data) == 0 {
		panic("collections: Pop on empty heap")
	}
	return heap.Pop(&h.items).(E)
}

// Peek returns the top element without removing it. Panics on an empty heap.
func (h *Heap[E]) Peek() E {
	if len(h.items.data) == 0 {
		panic("collections: Peek on empty heap")
	}
	return h.items.data[0]
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[E]) IsEmpty() bool { return len(h.items.data) == 0 }

// Size returns the number of elements.
func (h *Heap[E]) Size() int { return len(h.items.data) }

// itemHeap adapts a slice and comparator to container/heap.Interface.
type itemHeap[E any] struct {
	data []E
	less Less[E]
}

func (q itemHeap[E]) Len() int           { return len(q.data) }
func (q itemHeap[E]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }
func (q itemHeap[E]) Swap(i, j int)      { q.data[i], q.data[j] = q.data[j], q.data[i] }

func (q *itemHeap[E]) Push(x interface{}) { q.data = append(q.data, x.(E)) }

func (q *itemHeap[E]) Pop() interface{} {
	old := q.data
	n := len(old)
	item := old[n-1]
	var zero E
	old[n-1] = zero
	q.data = old[:n-1]

	return item
}
