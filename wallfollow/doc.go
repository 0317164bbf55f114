// Package wallfollow implements a greedy contour-following search ("B*"-style)
// driven by a population of explorers.
//
// An explorer in the Free state walks straight toward the goal along the axis
// with the larger remaining distance. When that cell is blocked it splits into two
// Crawling explorers that follow the obstacle contour, one keeping its right hand
// on the wall and one its left. A crawler returns to Free as soon as its last move
// lines up with the direction toward the goal again.
//
// Explorers advance in synchronized generations. Every cell an explorer enters is
// closed at once, so two explorers never share a cell and parent links form a tree
// rooted at the start. The search stops when an explorer stands on the goal, when
// every explorer has died, or after width×height generations
// (search.WithMaxIterations overrides the cap).
//
// The result is a valid 4-connected path but not necessarily a shortest one; the
// engine trades optimality for very few expanded cells on sparse maps.
// Movement is always orthogonal: search.WithMovement is ignored.
package wallfollow
