package astar

import "github.com/katalvlaran/gridpath/search"

// Name is the engine identifier reported by Manager.Name.
const Name = "astar"

// Cost is the A* node payload: G from the start, H to the goal, F = G + H.
type Cost = search.Estimate

// order pops the lowest F first and breaks ties toward the goal (lower H).
type order = search.EstimateOrder
