// Package graph provides the directed, integer-weighted multigraph-free
// graph primitive used as the in-memory representation of a directly-follows
// graph (DFG) throughout discovery: reachability (package flow), cut
// detection (package cuts), and fallback min-cut solvers (package fallback)
// all operate on *graph.Graph.
//
// This is adapted from the teacher's core.Graph: the same Edge shape and
// adjacency-map layout, but with a plain New constructor and the
// sync.RWMutex locking removed. Spec §5 mandates a single-threaded, synchronous core
// with no shared mutable state across goroutines, so the thread-safety the
// teacher builds in has no caller here; dropping it keeps Clone/Induced
// allocation-cheap and avoids lock overhead on the hot recursive path in
// package discover.
//
// Unlike the teacher's core.Graph, edges are not a parallel-edge multiset:
// a DFG is, per spec §3, a mapping from an ordered activity pair to a
// single non-negative frequency, so AddEdge accumulates weight onto an
// existing (from, to) pair instead of recording a new parallel edge.
package graph
