package frontier_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tilesearch/frontier"
)

// FrontierSuite exercises Stack, Queue and PriorityQueue disciplines.
type FrontierSuite struct {
	suite.Suite
}

func drain[T comparable](f frontier.Frontier[T]) []T {
	var out []T
	for !f.IsEmpty() {
		item, ok := f.Pop()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}

// TestStackIsLIFO pushes A, B, C and expects C, B, A.
func (s *FrontierSuite) TestStackIsLIFO() {
	st := frontier.NewStack[string]()
	for _, v := range []string{"A", "B", "C"} {
		st.Push(v)
	}
	require.Equal(s.T(), 3, st.Len())
	require.Equal(s.T(), []string{"C", "B", "A"}, drain[string](st))
}

// TestQueueIsFIFO pushes A, B, C and expects A, B, C.
func (s *FrontierSuite) TestQueueIsFIFO() {
	q := frontier.NewQueue[string]()
	for _, v := range []string{"A", "B", "C"} {
		q.Push(v)
	}
	require.Equal(s.T(), []string{"A", "B", "C"}, drain[string](q))
}

// TestQueueCompaction interleaves pushes and pops past the compaction threshold.
func (s *FrontierSuite) TestQueueCompaction() {
	q := frontier.NewQueue[int]()
	next := 0
	for i := 0; i < 500; i++ {
		q.Push(i)
		if i%3 == 2 {
			v, ok := q.Pop()
			require.True(s.T(), ok)
			require.Equal(s.T(), next, v)
			next++
		}
	}
	for !q.IsEmpty() {
		v, _ := q.Pop()
		require.Equal(s.T(), next, v)
		next++
	}
	require.Equal(s.T(), 500, next)
}

// TestContainsTracksMembership checks Contains across push and pop, including duplicates.
func (s *FrontierSuite) TestContainsTracksMembership() {
	for name, f := range map[string]frontier.Frontier[string]{
		"stack": frontier.NewStack[string](),
		"queue": frontier.NewQueue[string](),
	} {
		require.False(s.T(), f.Contains("X"), name)
		f.Push("X")
		f.Push("X")
		require.True(s.T(), f.Contains("X"), name)
		_, _ = f.Pop()
		require.True(s.T(), f.Contains("X"), "%s: one copy remains", name)
		_, _ = f.Pop()
		require.False(s.T(), f.Contains("X"), name)
	}
}

// TestPopEmpty verifies the ok flag and MustPop sentinel on empty containers.
func (s *FrontierSuite) TestPopEmpty() {
	st := frontier.NewStack[int]()
	_, ok := st.Pop()
	require.False(s.T(), ok)

	_, err := frontier.MustPop[int](frontier.NewQueue[int]())
	require.True(s.T(), errors.Is(err, frontier.ErrEmpty))

	pq := frontier.NewPriorityQueue[int]()
	_, _, ok = pq.Pop()
	require.False(s.T(), ok)
	_, _, ok = pq.Peek()
	require.False(s.T(), ok)
}

// TestPriorityOrder pops by ascending priority.
func (s *FrontierSuite) TestPriorityOrder() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("d", 4.5)
	pq.Push("b", 2)

	var got []string
	for !pq.IsEmpty() {
		item, _, _ := pq.Pop()
		got = append(got, item)
	}
	require.Equal(s.T(), []string{"a", "b", "c", "d"}, got)
}

// TestPriorityTiesPopInPushOrder pushes (A,3) then (B,3) and expects A first.
func (s *FrontierSuite) TestPriorityTiesPopInPushOrder() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("A", 3)
	pq.Push("B", 3)
	first, _, _ := pq.Pop()
	second, _, _ := pq.Pop()
	require.Equal(s.T(), "A", first)
	require.Equal(s.T(), "B", second)
}

// TestPriorityTiesLargeRun checks stability well beyond a handful of items.
func (s *FrontierSuite) TestPriorityTiesLargeRun() {
	pq := frontier.NewPriorityQueue[int]()
	for i := 0; i < 200; i++ {
		pq.Push(i, float64(i%4))
	}
	last := map[float64]int{0: -1, 1: -1, 2: -1, 3: -1}
	prevPriority := -1.0
	for !pq.IsEmpty() {
		item, p, _ := pq.Pop()
		require.GreaterOrEqual(s.T(), p, prevPriority)
		require.Greater(s.T(), item, last[p])
		last[p] = item
		prevPriority = p
	}
}

// TestUpdateRefusesToRaise pushes X at 5, updates to 10, and expects 5.
func (s *FrontierSuite) TestUpdateRefusesToRaise() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("X", 5)
	require.False(s.T(), pq.Update("X", 10))
	require.False(s.T(), pq.Update("X", 5))
	p, ok := pq.Priority("X")
	require.True(s.T(), ok)
	require.Equal(s.T(), 5.0, p)
}

// TestUpdateLowers moves an item ahead of cheaper-at-push-time peers.
func (s *FrontierSuite) TestUpdateLowers() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("A", 2)
	pq.Push("B", 3)
	pq.Push("C", 9)
	require.True(s.T(), pq.Update("C", 1))

	item, p, _ := pq.Peek()
	require.Equal(s.T(), "C", item)
	require.Equal(s.T(), 1.0, p)
	require.Equal(s.T(), 3, pq.Len())
}

// TestUpdateKeepsInsertionStamp lowers B onto A's priority; A was pushed first and still wins.
func (s *FrontierSuite) TestUpdateKeepsInsertionStamp() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("A", 2)
	pq.Push("B", 5)
	pq.Update("B", 2)
	first, _, _ := pq.Pop()
	require.Equal(s.T(), "A", first)
}

// TestUpdateAbsentPushes treats an unknown item as a push.
func (s *FrontierSuite) TestUpdateAbsentPushes() {
	pq := frontier.NewPriorityQueue[string]()
	require.True(s.T(), pq.Update("Z", 4))
	require.True(s.T(), pq.Contains("Z"))
}

// TestPushExistingRekeys re-pushes a queued item with a higher priority.
func (s *FrontierSuite) TestPushExistingRekeys() {
	pq := frontier.NewPriorityQueue[string]()
	pq.Push("A", 1)
	pq.Push("B", 2)
	pq.Push("A", 7)
	require.Equal(s.T(), 2, pq.Len())

	first, _, _ := pq.Pop()
	second, p, _ := pq.Pop()
	require.Equal(s.T(), "B", first)
	require.Equal(s.T(), "A", second)
	require.Equal(s.T(), 7.0, p)
}

// TestContainsIgnoresPriority tests membership by value only.
func (s *FrontierSuite) TestContainsIgnoresPriority() {
	pq := frontier.NewPriorityQueue[[2]int]()
	pq.Push([2]int{1, 2}, 42)
	require.True(s.T(), pq.Contains([2]int{1, 2}))
	require.False(s.T(), pq.Contains([2]int{2, 1}))
	_, _, _ = pq.Pop()
	require.False(s.T(), pq.Contains([2]int{1, 2}))
	_, ok := pq.Priority([2]int{1, 2})
	require.False(s.T(), ok)
}

// TestFrontierSuite runs the suite.
func TestFrontierSuite(t *testing.T) {
	suite.Run(t, new(FrontierSuite))
}
