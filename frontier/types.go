package frontier

import "errors"

// ErrEmpty is returned by MustPop when the container holds no items.
var ErrEmpty = errors.New("frontier: pop from empty frontier")

// Frontier is the capability set shared by Stack and Queue.
type Frontier[T comparable] interface {
	// Push adds item to the container.
	Push(item T)

	// Pop removes and returns the next item according to the container's discipline.
	// ok is false when the container is empty.
	Pop() (item T, ok bool)

	// Len reports the number of queued items.
	Len() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Contains reports whether an item equal to item is queued.
	Contains(item T) bool
}

// MustPop pops from f and returns ErrEmpty instead of a false flag.
func MustPop[T comparable](f Frontier[T]) (T, error) {
	item, ok := f.Pop()
	if !ok {
		return item, ErrEmpty
	}

	return item, nil
}

// members is a multiset used by Stack and Queue for O(1) Contains.
type members[T comparable] map[T]int

func (m members[T]) add(item T) { m[item]++ }

func (m members[T]) remove(item T) {
	if m[item] <= 1 {
		delete(m, item)
		return
	}
	m[item]--
}
