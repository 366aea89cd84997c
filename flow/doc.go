// Package flow implements the reachability and minimum s-t cut kernel
// (spec §4.4, Component D) that packages cuts and fallback build their
// exact and best-effort cut tests on top of.
//
// IsReachable is a plain BFS over *graph.Graph. MinSTCut runs Edmonds–Karp
// (BFS-based augmenting paths over integer capacities) and returns the
// max-flow value, the residual-reachable set, and the cut edge set: the
// edges (u, v) with u residual-reachable from s, v not, and positive
// original capacity (spec §4.4).
//
// This is adapted from the teacher's flow/edmonds_karp.go: the same
// BFS-augmenting-path loop and residual-graph bookkeeping, rewritten over
// *graph.Graph's plain int64 weights (a DFG's edge multiplicities and the
// fallback solvers' unit/data-driven costs are always non-negative
// integers, so the teacher's float64-with-epsilon aggregation is
// unnecessary) and with the context-cancellation plumbing removed — spec §5
// explicitly rules out cancellation semantics for the core ("the caller
// bounds latency by bounding input size"). Ford–Fulkerson and Dinic, the
// teacher's other two max-flow algorithms, are dropped: spec §4.4 names
// Edmonds–Karp specifically for its reproducible BFS tie-breaking, and
// nothing in the discovery pipeline calls a second flow algorithm.
package flow
