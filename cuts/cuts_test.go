package cuts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/graph"
)

func TestExclusiveSplitsDisconnectedComponents(t *testing.T) {
	g := graph.New()
	g.AddEdge("b", "c", 3) // exclusive branch 1 (after 'a' is removed upstream)
	g.AddVertex("x")       // exclusive branch 2, isolated

	part, ok := cuts.Exclusive(g)
	require.True(t, ok)
	require.ElementsMatch(t, append(append([]string{}, part.SetL...), part.SetR...), []string{"b", "c", "x"})
}

func TestExclusiveFailsOnSingleComponent(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	_, ok := cuts.Exclusive(g)
	require.False(t, ok)
}

// TestSequenceSplitsS1Like mirrors spec §8 S1: a->b->c, a pure source.
func TestSequenceSplitsS1Like(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 5)
	g.AddEdge("b", "c", 5)

	part, ok := cuts.Sequence(g)
	require.True(t, ok)
	require.Equal(t, []string{"a"}, part.SetL)
	require.Equal(t, []string{"b", "c"}, part.SetR)
}

// TestSequenceSplitsRedoBodyFromTail mirrors the {b,c,x} sub-level of S4:
// {b,x} forms a cycle SCC, c is a pure sink.
func TestSequenceSplitsRedoBodyFromTail(t *testing.T) {
	g := graph.New()
	g.AddEdge("b", "x", 3)
	g.AddEdge("x", "b", 3)
	g.AddEdge("b", "c", 1)

	part, ok := cuts.Sequence(g)
	require.True(t, ok)
	require.Equal(t, []string{"b", "x"}, part.SetL)
	require.Equal(t, []string{"c"}, part.SetR)
}

// TestParallelSplitsS3Like mirrors spec §8 S3's parallel branch {b,c}.
func TestParallelSplitsS3Like(t *testing.T) {
	g := graph.New()
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "b", 2)

	part, ok := cuts.Parallel(g, []string{"b", "c"}, []string{"b", "c"}, []string{"b", "c"})
	require.True(t, ok)
	require.Len(t, part.SetL, 1)
	require.Len(t, part.SetR, 1)
}

// TestRedoSplitsS4Like mirrors the degenerate {b,x} sub-level of S4, where
// local start and end both collapse to {b}.
func TestRedoSplitsS4Like(t *testing.T) {
	g := graph.New()
	g.AddEdge("b", "x", 2)
	g.AddEdge("x", "b", 2)

	part, ok := cuts.Redo(g, []string{"b", "x"}, []string{"b"}, []string{"b"})
	require.True(t, ok)
	require.Equal(t, []string{"b"}, part.SetL)
	require.Equal(t, []string{"x"}, part.SetR)
}

func TestRedoFailsWhenNoLoopBack(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)

	_, ok := cuts.Redo(g, []string{"a", "b", "c"}, []string{"a"}, []string{"c"})
	require.False(t, ok)
}

// TestRedoFailsOnAmbiguousBothReachableWithDisjointEndpoints covers a
// disjoint start/end DFG where x is reachable both from start without
// crossing end and from end without crossing start; per spec §4.5 this
// ambiguity must reject the cut rather than silently favor SetR.
func TestRedoFailsOnAmbiguousBothReachableWithDisjointEndpoints(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "x", 1)
	g.AddEdge("d", "x", 1)

	_, ok := cuts.Redo(g, []string{"a", "d", "x"}, []string{"a"}, []string{"d"})
	require.False(t, ok)
}
