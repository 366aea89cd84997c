package graph

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex absent from
// the graph.
var ErrVertexNotFound = errors.New("graph: vertex not found")
