// Package cuts implements Component E: the four perfect-cut detectors that
// the discovery orchestrator tries, in order, at every recursion level
// (spec §4.5): exclusive, sequence, parallel, redo. Each detector either
// returns a two-way activity partition or reports failure; none mutate the
// input graph.
//
// Grounded on the teacher's dfs package for traversal idiom (index/low-link
// marking with an on-stack set for SCC, sorted-order iteration for
// determinism) adapted to
// operate on graph.Graph instead of core.Graph, and on the flow package's
// reachability kernel for the redo detector.
package cuts
