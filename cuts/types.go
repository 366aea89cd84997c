package cuts

// Partition is a two-way split of an activity set, the shape every perfect
// and fallback cut detector returns (spec §4.5, §4.6).
type Partition struct {
	SetL []string
	SetR []string
}
