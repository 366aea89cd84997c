package fallback

import (
	"sort"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// BestRedoCut runs the same start/end reachability classification as the
// perfect redo detector (package cuts), but never fails on an ambiguous
// activity: ties default into SetR (the loop body), matching the perfect
// detector's own tie-break for the start==end case. Whatever edges the
// resulting partition still needs to satisfy the redo structural
// constraints (every end activity reaching into SetR, every start
// activity reached from SetR) are added at costFn's rate (spec §4.6).
func BestRedoCut(g *graph.Graph, activities, start, end []string, costFn CostFunc) (*Result, bool) {
	if len(start) == 0 || len(end) == 0 {
		return nil, false
	}

	startSet, endSet := toStrSet(start), toStrSet(end)
	setL := map[string]struct{}{}
	for s := range startSet {
		setL[s] = struct{}{}
	}
	for e := range endSet {
		setL[e] = struct{}{}
	}
	setR := map[string]struct{}{}

	barrierEnd := map[string]bool{}
	for _, e := range end {
		barrierEnd[e] = true
	}
	barrierStart := map[string]bool{}
	for _, s := range start {
		barrierStart[s] = true
	}

	reachFromStartNoEnd := map[string]bool{}
	for _, s := range start {
		for v := range flow.ReachableWithoutCrossing(g, s, barrierEnd) {
			reachFromStartNoEnd[v] = true
		}
	}
	reachFromEndNoStart := map[string]bool{}
	for _, e := range end {
		for v := range flow.ReachableWithoutCrossing(g, e, barrierStart) {
			reachFromEndNoStart[v] = true
		}
	}

	remaining := make([]string, 0, len(activities))
	for _, a := range activities {
		if _, in := setL[a]; !in {
			remaining = append(remaining, a)
		}
	}
	sort.Strings(remaining)

	for _, x := range remaining {
		if reachFromEndNoStart[x] {
			setR[x] = struct{}{}
		} else if reachFromStartNoEnd[x] {
			setL[x] = struct{}{}
		} else {
			// Unreachable from either anchor: default to the loop body,
			// repair cost below will wire it in if needed.
			setR[x] = struct{}{}
		}
	}

	setLSorted, setRSorted := mapKeysSorted(setL), mapKeysSorted(setR)
	if len(setLSorted) == 0 || len(setRSorted) == 0 {
		return nil, false
	}

	var missing [][2]string
	for _, e := range end {
		if !hasEdgeToAny(g, e, setRSorted) {
			missing = append(missing, [2]string{e, setRSorted[0]})
		}
	}
	for _, s := range start {
		if !hasEdgeFromAny(g, setRSorted, s) {
			missing = append(missing, [2]string{setRSorted[0], s})
		}
	}

	cost := additionCost(costFn, missing)
	repaired := applyRepair(g, nil, missing)

	return &Result{
		Operator:  Redo,
		Partition: cuts.Partition{SetL: setLSorted, SetR: setRSorted},
		Cost:      cost,
		Graph:     repaired,
	}, true
}

func hasEdgeToAny(g *graph.Graph, from string, to []string) bool {
	for _, t := range to {
		if g.HasEdge(from, t) {
			return true
		}
	}

	return false
}

func hasEdgeFromAny(g *graph.Graph, from []string, to string) bool {
	for _, f := range from {
		if g.HasEdge(f, to) {
			return true
		}
	}

	return false
}

func mapKeysSorted(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
