package dfg

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

// Result is the output of Build: the directly-follows graph plus the start
// and end activity sets derived from trace boundaries (spec §3).
type Result struct {
	Graph *graph.Graph
	Start []string
	End   []string
}

// Build constructs the divergence-free DFG from traces (spec §4.3).
//
// For each trace with at least one event, the trace's first activity joins
// Start and its last joins End. For each consecutive activity pair (a, b)
// within the trace, the edge a->b is added unless the trace's object type
// is divergent for both a and b, in which case the pair is skipped —
// exactly the asymmetric-looking but intentional check in the original:
// divergence is evaluated against the trace's own object type on both
// sides, never against the successor's type.
func Build(traces []model.Trace, pat *model.Patterns) *Result {
	g := graph.New()
	start := map[string]struct{}{}
	end := map[string]struct{}{}

	for _, tr := range traces {
		if len(tr.Events) == 0 {
			continue
		}
		for _, ev := range tr.Events {
			g.AddVertex(ev.Activity)
		}

		start[tr.Events[0].Activity] = struct{}{}
		end[tr.Events[len(tr.Events)-1].Activity] = struct{}{}

		for i := 0; i < len(tr.Events)-1; i++ {
			cur := tr.Events[i].Activity
			next := tr.Events[i+1].Activity

			if pat.IsDivergent(cur, tr.ObjectType) && pat.IsDivergent(next, tr.ObjectType) {
				continue
			}
			g.AddEdge(cur, next, 1)
		}
	}

	return &Result{
		Graph: g,
		Start: sortedSet(start),
		End:   sortedSet(end),
	}
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
