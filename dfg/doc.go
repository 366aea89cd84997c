// Package dfg implements Component C: the divergence-aware directly-follows
// graph builder. For each object's trace it links consecutive activities
// unless both are marked divergent (spec §3, §4.3) for that trace's own
// object type, and it records the trace's first and last activity as a
// start/end activity candidate.
//
// Grounded on original_source/src/divergence_free_dfg.rs. The original
// groups raw relation tuples by object ID, dedupes by event ID, and sorts by
// timestamp before walking them; relations.Traces already performs that
// same grouping/dedup/sort, so Build consumes its output directly instead
// of repeating it.
package dfg
