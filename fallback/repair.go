package fallback

import (
	"sort"

	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// applyRepair returns a clone of g with removed's edges dropped and a unit
// weight edge added for every pair in added.
func applyRepair(g *graph.Graph, removed []flow.CutEdge, added [][2]string) *graph.Graph {
	out := g.Clone()
	for _, e := range removed {
		out.RemoveEdge(e.From, e.To)
	}
	for _, p := range added {
		out.AddEdge(p[0], p[1], 1)
	}

	return out
}

func missingEdges(g *graph.Graph, setL, setR []string) [][2]string {
	var missing [][2]string
	for _, l := range setL {
		for _, r := range setR {
			if !g.HasEdge(l, r) {
				missing = append(missing, [2]string{l, r})
			}
		}
	}

	return missing
}

func additionCost(costFn CostFunc, missing [][2]string) int64 {
	var total int64
	for _, p := range missing {
		total += costFn(p[0], p[1])
	}

	return total
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}

	return a
}

func intersectSorted(a []string, set map[string]bool) []string {
	var out []string
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}

	return out
}

func diffSorted(a []string, set map[string]bool) []string {
	var out []string
	for _, v := range a {
		if !set[v] {
			out = append(out, v)
		}
	}

	return out
}

func sortedCopy(a []string) []string {
	out := append([]string(nil), a...)
	sort.Strings(out)

	return out
}

func toStrSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}
