package container

import "container/heap"

// Less reports whether a has strictly higher priority (pops first) than b.
// Callers decide the ordering: a "cost ascending" Less yields a min-heap, a
// "likelihood descending" Less yields a max-heap. Ties are broken by
// insertion order regardless of which ordering Less implements.
type Less[T any] func(a, b T) bool

// entry pairs a queued value with the sequence number it was pushed with.
type entry[T any] struct {
	value T
	seq   uint64
}

// innerHeap adapts entry[T] to container/heap.Interface.
type innerHeap[T any] struct {
	items []entry[T]
	less  Less[T]
}

func (h innerHeap[T]) Len() int { return len(h.items) }

func (h innerHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}

	// Stable tie-break: earlier-pushed entries pop first.
	return a.seq < b.seq
}

func (h innerHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *innerHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(entry[T])) }

func (h *innerHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

// PQueue is a generic priority queue with a stable tie-break rule. It is not
// safe for concurrent use; each MHT engine instance owns its own PQueue
// scratch workspaces (§5: "per-instance scratch and must not be aliased").
type PQueue[T any] struct {
	h       innerHeap[T]
	nextSeq uint64
}

// New returns an empty PQueue ordered by less.
func New[T any](less Less[T]) *PQueue[T] {
	return &PQueue[T]{h: innerHeap[T]{less: less}}
}

// Len returns the number of queued entries.
func (q *PQueue[T]) Len() int { return q.h.Len() }

// Push inserts value, breaking future ties against entries pushed earlier.
func (q *PQueue[T]) Push(value T) {
	heap.Push(&q.h, entry[T]{value: value, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the highest-priority entry. It panics if the queue
// is empty; callers must check Len() first (programmer-misuse class, §7.iv).
func (q *PQueue[T]) Pop() T {
	if q.h.Len() == 0 {
		panic("container: Pop on empty PQueue")
	}

	return heap.Pop(&q.h).(entry[T]).value
}

// Peek returns the highest-priority entry without removing it. It panics if
// the queue is empty.
func (q *PQueue[T]) Peek() T {
	if q.h.Len() == 0 {
		panic("container: Peek on empty PQueue")
	}

	return q.h.items[0].value
}

// Empty reports whether the queue has no entries.
func (q *PQueue[T]) Empty() bool { return q.h.Len() == 0 }
