package fallback

import (
	"sort"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// BestSequenceCut searches every ordered activity pair (a1, a2) for the
// cheapest sequence repair (spec §4.6): the min-cut that makes a2
// unreachable from a1 gives the removal cost and a residual-reachability
// partition (SetL = still reachable from a1, SetR = the rest); any edges
// still missing from SetL to SetR are added at costFn's rate. The pair
// minimizing (total cost, set-size imbalance) wins.
func BestSequenceCut(g *graph.Graph, activities []string, costFn CostFunc) (*Result, bool) {
	acts := append([]string(nil), activities...)
	sort.Strings(acts)

	var best *Result
	var bestImbalance int

	for _, a1 := range acts {
		for _, a2 := range acts {
			if a1 == a2 {
				continue
			}
			res, err := flow.MinSTCut(g, a1, a2)
			if err != nil {
				continue
			}

			setL := intersectSorted(acts, res.ReachableFromS)
			setR := diffSorted(acts, res.ReachableFromS)
			if len(setL) == 0 || len(setR) == 0 {
				continue
			}

			missing := missingEdges(g, setL, setR)
			total := res.MaxFlow + additionCost(costFn, missing)
			imbalance := absInt(len(setL) - len(setR))

			if best == nil || total < best.Cost || (total == best.Cost && imbalance < bestImbalance) {
				repaired := applyRepair(g, res.CutEdges, missing)
				best = &Result{
					Operator:  Sequence,
					Partition: cuts.Partition{SetL: setL, SetR: setR},
					Cost:      total,
					Graph:     repaired,
				}
				bestImbalance = imbalance
			}
		}
	}

	return best, best != nil
}
