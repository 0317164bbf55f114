// Package jps implements Jump Point Search on a uniform-cost grid.
//
// JPS is A* over a reduced set of nodes. Instead of pushing every neighbor, it
// scans ("jumps") along a direction until it reaches a cell that must be
// expanded: the goal, a cell with a forced neighbor, or a cell from which a
// perpendicular scan finds such a cell. Only those jump points enter the open list.
// Paths are rebuilt by filling in the unit steps between consecutive jump points.
//
// Movement modes:
//
//   - search.OnlyStraight: 4-connected travel. A horizontal scan stops at a cell
//     whose side neighbor is open while the cell behind it on that side is blocked.
//     A vertical scan stops on the mirrored condition, and also at any cell whose
//     horizontal sub-scans find a jump point. Every edge is straight.
//   - search.CanDiagonal: 8-connected travel, a diagonal step being forbidden only
//     when both flanking orthogonal cells are blocked. Canonical pruning: straight
//     arrivals continue forward plus forced diagonals; diagonal arrivals continue
//     along both components, the diagonal itself and forced diagonals.
//
// The edge weight between two jump points is their Euclidean distance, which on
// a straight or exactly diagonal segment equals the sum of its unit steps.
// H is Manhattan (OnlyStraight) or octile (CanDiagonal). The returned cost equals
// the A* cost in the same mode.
//
// Complexity:
//
//   - Time:  O(N log N) heap work in the worst case, N = width×height; scanning is
//     O(N) per expanded jump point in the worst case, typically much less.
//   - Space: O(N).
package jps
