package cuts

import (
	"sort"

	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// Sequence tests the SCC-DAG cut (spec §4.5): compute strongly connected
// components of g and condense them into the SCC-DAG. SetL is the union of
// components with in-degree zero in that DAG (strict predecessors: they
// appear as an edge source but never as a target); SetR is everything
// else. The cut is valid iff every activity in SetR is reachable from
// every activity in SetL and no activity in SetL is reachable from SetR.
func Sequence(g *graph.Graph) (Partition, bool) {
	components := stronglyConnectedComponents(g)
	if len(components) < 2 {
		return Partition{}, false
	}

	owner := map[string]int{}
	for i, comp := range components {
		for _, a := range comp {
			owner[a] = i
		}
	}

	indegree := make([]int, len(components))
	seen := map[[2]int]struct{}{}
	for _, e := range g.Edges() {
		si, ti := owner[e.From], owner[e.To]
		if si == ti {
			continue
		}
		key := [2]int{si, ti}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		indegree[ti]++
	}

	var setL, setR []string
	for i, comp := range components {
		if indegree[i] == 0 {
			setL = append(setL, comp...)
		} else {
			setR = append(setR, comp...)
		}
	}
	sort.Strings(setL)
	sort.Strings(setR)

	if len(setL) == 0 || len(setR) == 0 {
		return Partition{}, false
	}

	for _, l := range setL {
		for _, r := range setR {
			if !flow.IsReachable(g, l, r) {
				return Partition{}, false
			}
			if flow.IsReachable(g, r, l) {
				return Partition{}, false
			}
		}
	}

	return Partition{SetL: setL, SetR: setR}, true
}
