package frontier

// Queue is a first-in-first-out Frontier.
//
// Popped slots are reclaimed lazily: once the consumed prefix outgrows the live
// part, the remaining items are copied to the front of the backing array.
type Queue[T comparable] struct {
	items []T
	head  int
	in    members[T]
}

// NewQueue returns an empty queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{in: make(members[T])}
}

// Push appends item at the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
	q.in.add(item)
}

// Pop removes and returns the earliest pushed item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	q.in.remove(item)

	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Contains reports whether item is queued.
func (q *Queue[T]) Contains(item T) bool { return q.in[item] > 0 }
