package fallback

import (
	"sort"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// BestParallelCut reduces the search to a global min-cut (spec §4.6): build
// an undirected graph where the weight between a and b is the count of
// directed edges missing between them (0, 1, or 2), fix a source, run
// Edmonds–Karp against every other activity as sink, and keep the
// cheapest cut. The cut's reachable-from-source set becomes SetL.
func BestParallelCut(g *graph.Graph, activities []string, costFn CostFunc) (*Result, bool) {
	acts := append([]string(nil), activities...)
	sort.Strings(acts)
	if len(acts) < 2 {
		return nil, false
	}

	missingGraph := graph.New()
	for _, a := range acts {
		missingGraph.AddVertex(a)
	}
	for i, a := range acts {
		for _, b := range acts[i+1:] {
			var missing int64
			if !g.HasEdge(a, b) {
				missing++
			}
			if !g.HasEdge(b, a) {
				missing++
			}
			if missing > 0 {
				missingGraph.AddEdge(a, b, missing)
				missingGraph.AddEdge(b, a, missing)
			}
		}
	}

	source := acts[0]
	var best *Result
	var bestImbalance int

	for _, sink := range acts[1:] {
		res, err := flow.MinSTCut(missingGraph, source, sink)
		if err != nil {
			continue
		}

		setL := intersectSorted(acts, res.ReachableFromS)
		setR := diffSorted(acts, res.ReachableFromS)
		if len(setL) == 0 || len(setR) == 0 {
			continue
		}

		missing := missingEdges(g, setL, setR)
		missing = append(missing, missingEdges(g, setR, setL)...)
		total := additionCost(costFn, missing)
		imbalance := absInt(len(setL) - len(setR))

		if best == nil || total < best.Cost || (total == best.Cost && imbalance < bestImbalance) {
			repaired := applyRepair(g, nil, missing)
			best = &Result{
				Operator:  Parallel,
				Partition: cuts.Partition{SetL: setL, SetR: setR},
				Cost:      total,
				Graph:     repaired,
			}
			bestImbalance = imbalance
		}
	}

	return best, best != nil
}
