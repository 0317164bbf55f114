// Package astar implements A* search on a grid.
//
// A* orders the open list by F = G + H, where G is the cost from the start and H
// an admissible estimate of the remaining cost: Manhattan distance for
// 4-connected travel, octile distance when search.CanDiagonal is selected.
// Ties on F are broken by the smaller H, which favors cells closer to the goal
// and keeps the expansion narrow on open maps.
//
// Both heuristics are consistent for their movement mode, so a closed cell is
// never reopened and the returned path is optimal.
//
// Complexity:
//
//   - Time:  O(N log N) worst case, N = width×height; typically far fewer
//     expansions than Dijkstra.
//   - Space: O(N).
package astar
