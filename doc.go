// Package gridpath is a toolbox of interchangeable pathfinding engines for
// uniform-cost 2D grids, built around one manager contract.
//
// 🚀 What is gridpath?
//
//	A thread-safe grid search library that brings together:
//		• Grid primitives: random or ASCII-literal maps, live obstacle editing
//		• Dijkstra: uniform-cost reference search
//		• A*: heuristic search, Manhattan or octile
//		• JPS: jump point search, 4- or 8-directional
//		• Wall-follower: greedy contour-crawling explorers
//		• Hooks and metrics: OnExpand/OnEnqueue callbacks, Prometheus and tracing recorders
//
// ✨ Why choose gridpath?
//
//   - One contract – every engine implements search.Manager, so renderers,
//     editors and benchmarks treat them alike
//   - Safe by construction – per-call search contexts, typed node payloads
//   - Deterministic – seeded maps, reproducible paths and closed lists
//
// Subpackages:
//
//	grid/        Grid, Point, Direction, ASCII parsing
//	pqueue/      generic binary min-heap used as the open list
//	search/      Manager contract, options, errors, per-call Context
//	dijkstra/    Dijkstra engine
//	astar/       A* engine
//	jps/         Jump Point Search engine
//	wallfollow/  wall-follower engine
//	metrics/     Prometheus and OpenTelemetry search.Recorder implementations
//	cmd/gridpath headless and interactive (tcell) front end
//
// Quick ASCII example ('S' start, 'E' goal, '*' path, 'o' closed):
//
//	S*o..
//	#*###
//	.***E
//
// Engines are built directly (astar.New(...)) or by name through New:
//
//	m, err := gridpath.New(gridpath.AStar, search.WithMovement(search.CanDiagonal))
package gridpath
