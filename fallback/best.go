package fallback

// priority mirrors the perfect-detector order (spec §4.5, §4.6): when two
// fallback candidates tie on cost, the one whose operator comes first here
// wins.
var priority = map[Operator]int{
	Exclusive: 0,
	Sequence:  1,
	Parallel:  2,
	Redo:      3,
}

// Best returns the candidate (typically one per fallback solver) with the
// lowest cost, ties broken by operator priority; nil candidates are skipped (spec §4.6: "the orchestrator
// chooses the fallback with lowest normalized cost; ties broken by a fixed
// operator preference").
func Best(candidates ...*Result) (*Result, bool) {
	var best *Result
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || c.Cost < best.Cost ||
			(c.Cost == best.Cost && priority[c.Operator] < priority[best.Operator]) {
			best = c
		}
	}

	return best, best != nil
}
