package jps

import "github.com/katalvlaran/gridpath/search"

// Name is the engine identifier reported by Manager.Name.
const Name = "jps"

// Cost is the jump-point payload; edges between jump points are Euclidean.
type Cost = search.Estimate

type order = search.EstimateOrder
