package frontier

// Stack is a last-in-first-out Frontier.
type Stack[T comparable] struct {
	items []T
	in    members[T]
}

// NewStack returns an empty stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{in: make(members[T])}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
	s.in.add(item)
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	s.in.remove(item)

	return item, true
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Contains reports whether item is on the stack.
func (s *Stack[T]) Contains(item T) bool { return s.in[item] > 0 }
