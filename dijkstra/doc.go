// Package dijkstra implements uniform-cost shortest-path search on a grid.
//
// Dijkstra expands cells in order of increasing path cost G from the start
// until the goal is dequeued. It ignores the goal's position while ordering, so
// it closes every cell cheaper than the goal: the reference engine the others
// are measured against.
//
// Complexity:
//
//   - Time:  O(N log N), N = width×height
//   - Each cell is closed at most once.
//   - Each relaxation may push a new heap entry: at most 4 (or 8) per closed cell.
//   - Space: O(N) for nodes, O(N) worst case for stale heap entries.
//
// Notes on implementation choices:
//
//   - Neighbors follow search.WithMovement: 4-connected by default, 8-connected
//     with √2 diagonals when CanDiagonal is selected.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries whose node is already closed.
//   - Relaxation happens only on a strictly smaller candidate, so among equal-cost
//     routes the first one discovered is kept.
package dijkstra
