// Package relations implements Component A of the discovery pipeline: it
// flattens an OCEL log into (event-id, activity, timestamp, object-id,
// object-type) tuples (spec §4.1) and groups those tuples into per-object
// Traces (spec §3), the shared derived artifact the DFG builder,
// self-loop rewriter, fallback cost model, and conformance evaluator all
// consume.
//
// Grounded on original_source/src/build_relations_fns.rs: sort by event ID,
// then stable-sort by timestamp, so ties break by event ID (spec §4.1).
package relations
