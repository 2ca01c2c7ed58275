// Package frontier provides the containers that hold discovered-but-not-yet-expanded
// states during a graph search.
//
// What
//
//   - Stack[T]:         last-in-first-out; drives depth-first order.
//   - Queue[T]:         first-in-first-out; drives breadth-first order.
//   - PriorityQueue[T]: minimum priority first, ties broken by insertion order,
//     with indexed decrease-key.
//
// Stack and Queue satisfy the Frontier interface consumed by the uninformed search.
// PriorityQueue has its own API because every push carries a priority.
//
// Determinism
//
//	PriorityQueue stamps each pushed item with a monotonically increasing sequence
//	number. Among equal priorities the smaller sequence number pops first, so a search
//	over the same problem always expands states in the same order.
//
// Complexity
//
//   - Stack, Queue: O(1) amortized Push, Pop and Contains.
//   - PriorityQueue: O(log n) Push, Pop and Update; O(1) Contains and Priority.
//
// Items are compared with ==, so T must be comparable. None of the containers are
// safe for concurrent use; a search owns its frontier exclusively.
package frontier
