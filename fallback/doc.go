// Package fallback implements Component F: the best-cost imperfect cut
// solvers invoked when none of the four perfect detectors in package cuts
// succeed (spec §4.6). Each solver searches a space of candidate
// partitions, scores the repair (edge removals/additions) needed to make
// the candidate structurally valid for its operator, and returns the
// cheapest one found together with the repaired DFG.
//
// Grounded on original_source/src/good_cuts.rs (exhaustive source/sink
// min-cut search) and original_source/src/best_redo_cuts.rs (incremental
// greedy assignment with per-activity repair cost), simplified to the
// closed-form descriptions in spec §4.6 rather than the original's
// brute-force all-paths enumeration: this package always routes repair
// costs through the Edmonds–Karp kernel in package flow instead of
// enumerating simple paths, since spec §4.4 already establishes that
// kernel as the one source of min-cut truth.
package fallback
