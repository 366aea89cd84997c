package cuts

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
)

// Parallel tests the greedy-bipartition cut (spec §4.5): SetL seeds with
// the lexicographically first activity; each remaining activity joins
// the side opposite the one it is fully bidirectionally connected to (both
// (x,y) and (y,x) edges present for every y already on that side): SetR if
// it is connected to all of SetL, else SetL if it is connected to all of
// SetR, failing if neither holds. The candidate partition is then validated: both sides must
// intersect the start and end activity sets, and every cross pair must
// have edges in both directions.
func Parallel(g *graph.Graph, activities []string, start, end []string) (Partition, bool) {
	acts := append([]string(nil), activities...)
	sort.Strings(acts)
	if len(acts) < 2 {
		return Partition{}, false
	}

	setL := []string{acts[0]}
	var setR []string

	for _, x := range acts[1:] {
		switch {
		case fullyBidirectional(g, x, setL):
			setR = append(setR, x)
		case fullyBidirectional(g, x, setR):
			setL = append(setL, x)
		default:
			return Partition{}, false
		}
	}

	if len(setL) == 0 || len(setR) == 0 {
		return Partition{}, false
	}

	startSet, endSet := toSet(start), toSet(end)
	if !intersectsSet(setL, startSet) || !intersectsSet(setL, endSet) {
		return Partition{}, false
	}
	if !intersectsSet(setR, startSet) || !intersectsSet(setR, endSet) {
		return Partition{}, false
	}

	for _, l := range setL {
		for _, r := range setR {
			if !g.HasEdge(l, r) || !g.HasEdge(r, l) {
				return Partition{}, false
			}
		}
	}

	sort.Strings(setL)
	sort.Strings(setR)

	return Partition{SetL: setL, SetR: setR}, true
}

func fullyBidirectional(g *graph.Graph, x string, group []string) bool {
	for _, y := range group {
		if !g.HasEdge(x, y) || !g.HasEdge(y, x) {
			return false
		}
	}

	return true
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

func intersectsSet(items []string, set map[string]struct{}) bool {
	for _, it := range items {
		if _, ok := set[it]; ok {
			return true
		}
	}

	return false
}
