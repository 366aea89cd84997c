package flow

import "errors"

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// CutResult is the outcome of MinSTCut: the max-flow value, the set of
// vertices reachable from s in the residual graph, and the cut edges
// themselves (original edges crossing from the reachable set to its
// complement).
type CutResult struct {
	MaxFlow        int64
	ReachableFromS map[string]bool
	CutEdges       []CutEdge
}

// CutEdge is one edge removed by a min s-t cut, with its original capacity.
type CutEdge struct {
	From, To string
	Capacity int64
}
