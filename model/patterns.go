package model

// ActivitySets holds, for a single activity, the four interaction-pattern
// sets Component B computes (spec §3, §4.2). Related and Deficient are
// always disjoint; an object type absent from all four appears in none.
type ActivitySets struct {
	Related    []string
	Deficient  []string
	Convergent []string
	Divergent  []string
}

// IsDivergent reports whether otype is marked divergent in this set.
func (a ActivitySets) IsDivergent(otype string) bool {
	return contains(a.Divergent, otype)
}

func contains(sorted []string, s string) bool {
	for _, v := range sorted {
		if v == s {
			return true
		}
	}

	return false
}

// Patterns is the full per-log interaction-pattern result: one ActivitySets
// per activity, plus the sorted activity and object-type universes.
type Patterns struct {
	ByActivity  map[string]ActivitySets
	Activities  []string
	ObjectTypes []string
}

// IsDivergent reports whether object type otype is divergent for activity.
// Missing activities report false (spec: absent types participate in none
// of the four sets).
func (p Patterns) IsDivergent(activity, otype string) bool {
	sets, ok := p.ByActivity[activity]
	if !ok {
		return false
	}

	return sets.IsDivergent(otype)
}
