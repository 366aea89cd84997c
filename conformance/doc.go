// Package conformance implements Component I: it enumerates the language a
// process tree generates (spec §4.9), normalizes observed per-object traces
// for comparison, and scores the tree against the log as fitness,
// precision, and F-score.
//
// Grounded on original_source/src/conformance_checking.rs and
// conformance_format.rs for the trace-normalization rules (self-loop
// collapsing, repeated-activity dropping) and the fitness/precision
// formulas; the language-generation step itself is re-derived directly
// from the operator semantics of spec §4.9 rather than the original's
// token-replay heuristic, which spec §4.9 supersedes.
package conformance
