package frontier

import "container/heap"

// entry is one slot of the priority heap.
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64 // insertion stamp; smaller pops first among equal priorities
	index    int    // current slot in the heap, maintained by Swap
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[T comparable] []*entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-priority queue with stable tie-breaking and
// O(log n) decrease-key.
//
// An auxiliary map from item to heap entry makes Contains, Priority and Update
// independent of queue size. Each item appears at most once.
type PriorityQueue[T comparable] struct {
	heap  entryHeap[T]
	index map[T]*entry[T]
	next  uint64
}

// NewPriorityQueue returns an empty priority queue.
func NewPriorityQueue[T comparable]() *PriorityQueue[T] {
	return &PriorityQueue[T]{index: make(map[T]*entry[T])}
}

// Push inserts item with the given priority.
// Pushing an item that is already queued re-keys it to priority and refreshes
// its insertion stamp, as if it had been removed and pushed again.
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	if e, ok := pq.index[item]; ok {
		e.priority = priority
		e.seq = pq.stamp()
		heap.Fix(&pq.heap, e.index)
		return
	}
	e := &entry[T]{item: item, priority: priority, seq: pq.stamp()}
	heap.Push(&pq.heap, e)
	pq.index[item] = e
}

// Pop removes and returns the item with the smallest priority.
// Among equal priorities the earliest pushed item wins. ok is false when empty.
func (pq *PriorityQueue[T]) Pop() (item T, priority float64, ok bool) {
	if len(pq.heap) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&pq.heap).(*entry[T])
	delete(pq.index, e.item)

	return e.item, e.priority, true
}

// Peek returns the next item Pop would return without removing it.
func (pq *PriorityQueue[T]) Peek() (item T, priority float64, ok bool) {
	if len(pq.heap) == 0 {
		return item, 0, false
	}
	e := pq.heap[0]

	return e.item, e.priority, true
}

// Update lowers item's priority when priority is strictly smaller than the
// queued value, keeping its original insertion stamp. An equal or larger
// priority leaves the queue untouched. An item that is not queued is pushed.
// It reports whether the queue changed.
func (pq *PriorityQueue[T]) Update(item T, priority float64) bool {
	e, ok := pq.index[item]
	if !ok {
		pq.Push(item, priority)
		return true
	}
	if priority >= e.priority {
		return false
	}
	e.priority = priority
	heap.Fix(&pq.heap, e.index)

	return true
}

// Priority returns the queued priority of item.
func (pq *PriorityQueue[T]) Priority(item T) (float64, bool) {
	e, ok := pq.index[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Contains reports whether item is queued, regardless of its priority.
func (pq *PriorityQueue[T]) Contains(item T) bool {
	_, ok := pq.index[item]
	return ok
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.heap) }

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }

func (pq *PriorityQueue[T]) stamp() uint64 {
	s := pq.next
	pq.next++
	return s
}
