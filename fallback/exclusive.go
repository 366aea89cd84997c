package fallback

import (
	"sort"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// BestExclusiveCut searches every unordered activity pair (a, b) for the
// cheapest mutual-unreachability repair (spec §4.6): cut a->b and b->a
// independently, remove both cut edge sets, then classify every activity
// by which of a or b it remains reachable from. An activity reachable from
// both or neither sides is resolved by joining whichever side is currently
// smaller, to keep the final partition balanced.
func BestExclusiveCut(g *graph.Graph, activities []string) (*Result, bool) {
	acts := append([]string(nil), activities...)
	sort.Strings(acts)

	var best *Result
	var bestImbalance int

	for i, a := range acts {
		for _, b := range acts[i+1:] {
			cutAB, err1 := flow.MinSTCut(g, a, b)
			cutBA, err2 := flow.MinSTCut(g, b, a)
			if err1 != nil || err2 != nil {
				continue
			}

			removed := append(append([]flow.CutEdge{}, cutAB.CutEdges...), cutBA.CutEdges...)
			repaired := applyRepair(g, removed, nil)

			reachA := flow.ReachableSet(repaired, a)
			reachB := flow.ReachableSet(repaired, b)

			var setL, setR []string
			for _, x := range acts {
				inA, inB := reachA[x], reachB[x]
				switch {
				case inA && !inB:
					setL = append(setL, x)
				case inB && !inA:
					setR = append(setR, x)
				default:
					if len(setL) <= len(setR) {
						setL = append(setL, x)
					} else {
						setR = append(setR, x)
					}
				}
			}
			if len(setL) == 0 || len(setR) == 0 {
				continue
			}

			total := cutAB.MaxFlow + cutBA.MaxFlow
			imbalance := absInt(len(setL) - len(setR))

			if best == nil || total < best.Cost || (total == best.Cost && imbalance < bestImbalance) {
				best = &Result{
					Operator:  Exclusive,
					Partition: cuts.Partition{SetL: sortedCopy(setL), SetR: sortedCopy(setR)},
					Cost:      total,
					Graph:     repaired,
				}
				bestImbalance = imbalance
			}
		}
	}

	return best, best != nil
}
