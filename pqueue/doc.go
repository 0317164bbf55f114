// Package pqueue provides a generic binary min-heap with an injected ordering.
//
// The queue deliberately has no decrease-key. Search engines push a fresh entry
// whenever a node's cost improves and lazily discard stale entries on Dequeue
// (the caller checks its closed set). The heap itself is
// github.com/zyedidia/generic/heap; this package adapts it to a three-way
// comparison and adds Clear.
//
// Complexity:
//
//   - Enqueue, Dequeue: O(log n).
//   - Peek, Len: O(1). Clear allocates one backing array sized to the largest
//     queue seen so far.
//
// Ordering:
//
//   - The comparison returns <0, 0, >0 like cmp.Compare. Engines compose it from a
//     primary key (ascending) and an optional tie-breaking secondary key.
//
// A Queue is not safe for concurrent use.
package pqueue
