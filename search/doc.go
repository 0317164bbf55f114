// Package search holds the pieces every gridpath engine shares: the Manager
// contract, the Result type, movement modes, functional options and hooks,
// sentinel errors, distance metrics, and the generic per-call search Context.
//
// What:
//
//   - Manager is the uniform surface {InitMap, FindPath, NodesMap, ClosedList}
//     implemented by dijkstra, astar, jps and wallfollow.
//   - Context[C] is the scratch state of one FindPath call: a private copy of the
//     obstacle layer, one Node[C] per cell, an open list and a closed set. C is the
//     engine's cost payload ({G} for Dijkstra, {G,H,F} for A*/JPS), injected together
//     with its Ordering, so nodes from different engines cannot be mixed.
//   - Base implements the engine-independent half of Manager: map lifecycle,
//     endpoint validation, ClosedList bookkeeping and Recorder reporting.
//
// Why:
//
//   - Per-call contexts replace engine-wide open/closed fields: two searches over the
//     same grid never share scratch, and obstacle edits never race a running search.
//   - The open list has no decrease-key. Improved nodes are pushed again and stale
//     entries are skipped on Dequeue because the node is already closed.
//
// Options:
//
//   - WithMovement: OnlyStraight (4 neighbors, default) or CanDiagonal (8 neighbors,
//     a diagonal step is forbidden only when both flanking orthogonal cells are blocked).
//   - WithSeed / WithRand: RNG used by InitMap (seed 0 ⇒ fixed default seed).
//   - WithMaxIterations: generation cap for iterative engines (0 ⇒ width×height).
//   - WithContext: cancellation, polled once per expansion.
//   - WithOnExpand / WithOnEnqueue: per-node hooks.
//   - WithRecorder: receives one observation per FindPath call.
//
// Errors (sentinel):
//
//   - ErrNoMap             FindPath or SetObstacle before InitMap/Attach.
//   - ErrNilGrid           Attach(nil).
//   - ErrOutOfBounds       start or end outside the grid.
//   - ErrObstacleEndpoint  start or end on an obstacle.
//   - ErrOptionViolation   an invalid Option was supplied to the constructor.
//
// "No path" is not an error: FindPath returns Result{Found: false} and a nil error.
package search
