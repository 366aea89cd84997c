package conformance

import "github.com/opendfg/ocpt/model"

// NormalizeTrace projects tr onto its activity sequence, collapses
// consecutive duplicates of a self-loop activity (an activity with a (x,x)
// edge in the original DFG, per selfloop.SelfLoopActivities), and then
// rejects the trace if any non-self-loop activity still repeats (spec
// §4.9). ok is false for a rejected trace; callers drop it from the
// comparison set entirely rather than passing through a zero-value
// sequence.
func NormalizeTrace(tr model.Trace, selfLoopActivities []string) (seq []string, ok bool) {
	selfLoop := toSet(selfLoopActivities)

	acts := tr.Activities()
	collapsed := make([]string, 0, len(acts))
	for _, a := range acts {
		if n := len(collapsed); n > 0 && collapsed[n-1] == a {
			if _, isSelfLoop := selfLoop[a]; isSelfLoop {
				continue
			}
		}
		collapsed = append(collapsed, a)
	}

	seen := map[string]int{}
	for _, a := range collapsed {
		seen[a]++
		if seen[a] > 1 {
			if _, isSelfLoop := selfLoop[a]; !isSelfLoop {
				return nil, false
			}
		}
	}

	return collapsed, true
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}
