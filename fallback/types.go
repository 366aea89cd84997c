package fallback

import (
	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/graph"
)

// Operator names the four binary process-tree operators a fallback solver
// can produce (spec §4.6, §9).
type Operator string

const (
	Sequence  Operator = "sequence"
	Exclusive Operator = "exclusive"
	Parallel  Operator = "parallel"
	Redo      Operator = "redo"
)

// Result is a candidate repair: the partition it produces, the operator it
// is labeled with, its total cost (the summed DFG weight of the edges it
// removed plus the CostFunc cost of the edges it added), and the repaired
// graph those recursions should continue on (spec §4.7
// step 3: "recurse on each side using the modified DFG").
type Result struct {
	Operator Operator
	Partition cuts.Partition
	Cost      int64
	Graph     *graph.Graph
}

// CostFunc scores the cost of adding a missing edge (from, to) to the DFG.
// The default is UnitCost; §4.6.1's data-driven model supplies an
// alternative via NewDataDrivenCost.
type CostFunc func(from, to string) int64

// UnitCost assigns every addition a cost of 1, the spec's default model
// (SPEC_FULL.md §14, discovery.fallback_cost_model = "unit").
func UnitCost(string, string) int64 { return 1 }
