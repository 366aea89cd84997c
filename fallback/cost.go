package fallback

import (
	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

// NewDataDrivenCostForGraph builds the data-driven cost model (spec §4.6.1)
// scaled against g's own mean edge weight, the convention orchestration
// code should use: callers that already have the DFG don't need to compute
// avgWeight themselves.
func NewDataDrivenCostForGraph(traces []model.Trace, g *graph.Graph) CostFunc {
	return NewDataDrivenCost(traces, avgWeight(g))
}

// NewDataDrivenCost builds the optional edge-addition cost model of spec
// §4.6.1: for a missing edge (a, b), the probability that some b event
// eventually follows some a event within the same trace is computed, then
// mapped onto a descending cost scale so frequently-implied edges are
// cheap to add and rare ones are expensive.
//
// avgDFGCost scales the range: scores are clamped into [1, 2*avgDFGCost]
// via cost = max - score*(max-min).
func NewDataDrivenCost(traces []model.Trace, avgDFGCost float64) CostFunc {
	min := 1.0
	max := 2 * avgDFGCost
	if max < min {
		max = min
	}

	return func(from, to string) int64 {
		score := followProbability(traces, from, to)
		cost := max - score*(max-min)
		if cost < min {
			cost = min
		}

		return int64(cost + 0.5)
	}
}

// followProbability is the fraction of traces containing "from" in which
// "to" occurs anywhere after from's first occurrence.
func followProbability(traces []model.Trace, from, to string) float64 {
	var withFrom, withFollow int
	for _, tr := range traces {
		acts := tr.Activities()
		idx := indexOf(acts, from)
		if idx < 0 {
			continue
		}
		withFrom++
		if containsFrom(acts[idx+1:], to) {
			withFollow++
		}
	}
	if withFrom == 0 {
		return 0
	}

	return float64(withFollow) / float64(withFrom)
}

func indexOf(acts []string, target string) int {
	for i, a := range acts {
		if a == target {
			return i
		}
	}

	return -1
}

func containsFrom(acts []string, target string) bool {
	for _, a := range acts {
		if a == target {
			return true
		}
	}

	return false
}

// avgWeight returns the mean edge weight of g, or 1 if g has no edges.
func avgWeight(g *graph.Graph) float64 {
	edges := g.Edges()
	if len(edges) == 0 {
		return 1
	}
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return float64(sum) / float64(len(edges))
}
