package discover

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
)

// induceEndpoints derives the local start/end activities of side (spec
// §4.7's "induced start/end sets"): an activity keeps start/end status
// inherited from the parent level if it falls inside side, and additionally
// gains it if some edge crosses the side boundary into it (start) or out of
// it (end) in g, the DFG as known at the current recursion level (grounded
// on start_cuts_opti_v2.rs's get_start_and_end_activities; see doc.go for
// the inheritance generalization).
func induceEndpoints(g *graph.Graph, side, other, parentStart, parentEnd []string) (starts, ends []string) {
	sideSet := toSet(side)

	startSet := map[string]struct{}{}
	endSet := map[string]struct{}{}

	for _, a := range parentStart {
		if _, ok := sideSet[a]; ok {
			startSet[a] = struct{}{}
		}
	}
	for _, a := range parentEnd {
		if _, ok := sideSet[a]; ok {
			endSet[a] = struct{}{}
		}
	}

	for _, o := range other {
		for _, s := range side {
			if g.HasEdge(o, s) {
				startSet[s] = struct{}{}
			}
			if g.HasEdge(s, o) {
				endSet[s] = struct{}{}
			}
		}
	}

	return sortedKeys(startSet), sortedKeys(endSet)
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

func sortedCopy(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)

	return out
}
