package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/frontier"
)

// ExamplePriorityQueue shows tie-breaking by insertion order and decrease-key.
func ExamplePriorityQueue() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("A", 3)
	pq.Push("B", 3)
	pq.Push("C", 8)
	pq.Update("C", 1) // strictly lower: applied
	pq.Update("A", 9) // higher: ignored

	for !pq.IsEmpty() {
		item, p, _ := pq.Pop()
		fmt.Printf("%s:%.0f ", item, p)
	}
	fmt.Println()

	// Output:
	// C:1 A:3 B:3
}

// ExampleStack contrasts LIFO and FIFO order on the same pushes.
func ExampleStack() {
	s := frontier.NewStack[string]()
	q := frontier.NewQueue[string]()
	for _, v := range []string{"A", "B", "C"} {
		s.Push(v)
		q.Push(v)
	}
	for !s.IsEmpty() {
		a, _ := s.Pop()
		b, _ := q.Pop()
		fmt.Println(a, b)
	}

	// Output:
	// C A
	// B B
	// A C
}
