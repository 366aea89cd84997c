package cuts

import (
	"sort"

	"github.com/opendfg/ocpt/flow"
	"github.com/opendfg/ocpt/graph"
)

// Redo tests the start/end reachability-partition cut (spec §4.5). SetL
// seeds with start ∪ end. Each remaining activity x is classified by two
// reachability tests against the DFG: reachable from some start activity
// without crossing an end activity (a), and reachable from some end
// activity without crossing a start activity (b).
//
// When start and end are disjoint, (a) and (b) are expected to be mutually
// exclusive per x: (a) alone puts x in SetL, (b) alone puts x in SetR, and
// both holding at once is ambiguous and fails the detector. When start and
// end overlap (e.g. a single recurring activity is both the local start and
// local end of its sub-DFG), (a) and (b) collapse into the same test and
// both hold for any x reachable at all; in that case x is the loop body
// and belongs in SetR, so (b) takes priority instead of failing.
func Redo(g *graph.Graph, activities, start, end []string) (Partition, bool) {
	startSet, endSet := toSet(start), toSet(end)

	setL := map[string]struct{}{}
	for _, s := range start {
		setL[s] = struct{}{}
	}
	for _, e := range end {
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

	startEndOverlap := intersectsSet(start, endSet)

	for _, x := range remaining {
		b := reachFromEndNoStart[x]
		a := reachFromStartNoEnd[x]
		switch {
		case a && b && !startEndOverlap:
			// Disjoint start/end: both reachability tests holding for the
			// same activity is ambiguous, not a loop-body signal; reject.
			return Partition{}, false
		case b:
			setR[x] = struct{}{}
		case a:
			setL[x] = struct{}{}
		default:
			return Partition{}, false
		}
	}

	setLSorted, setRSorted := sortedKeys(setL), sortedKeys(setR)
	if len(setLSorted) == 0 || len(setRSorted) == 0 {
		return Partition{}, false
	}

	if !subsetOf(startSet, setL) || !subsetOf(endSet, setL) {
		return Partition{}, false
	}

	anyEndToR, everyEndToR := false, true
	for _, e := range end {
		found := false
		for r := range setR {
			if g.HasEdge(e, r) {
				found = true
				anyEndToR = true
				break
			}
		}
		if !found {
			everyEndToR = false
		}
	}

	anyRToStart, everyStartFromR := false, true
	for _, s := range start {
		found := false
		for r := range setR {
			if g.HasEdge(r, s) {
				found = true
				anyRToStart = true
				break
			}
		}
		if !found {
			everyStartFromR = false
		}
	}

	if !anyEndToR || !anyRToStart || !everyEndToR || !everyStartFromR {
		return Partition{}, false
	}

	return Partition{SetL: setLSorted, SetR: setRSorted}, true
}

func subsetOf(sub map[string]struct{}, super map[string]struct{}) bool {
	for s := range sub {
		if _, ok := super[s]; !ok {
			return false
		}
	}

	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
