package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/fallback"
	"github.com/opendfg/ocpt/graph"
)

// nonDecomposable builds the spec §8 S6 DFG: a->b, b->a, a->c, c->a, b->c.
// No perfect cut exists over {a,b,c}.
func nonDecomposable() *graph.Graph {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "a", 1)
	g.AddEdge("a", "c", 1)
	g.AddEdge("c", "a", 1)
	g.AddEdge("b", "c", 1)

	return g
}

func TestBestSequenceCutFindsAPartition(t *testing.T) {
	g := nonDecomposable()
	res, ok := fallback.BestSequenceCut(g, []string{"a", "b", "c"}, fallback.UnitCost)
	require.True(t, ok)
	require.NotEmpty(t, res.Partition.SetL)
	require.NotEmpty(t, res.Partition.SetR)
	require.GreaterOrEqual(t, res.Cost, int64(0))
}

func TestBestExclusiveCutFindsAPartition(t *testing.T) {
	g := nonDecomposable()
	res, ok := fallback.BestExclusiveCut(g, []string{"a", "b", "c"})
	require.True(t, ok)
	require.NotEmpty(t, res.Partition.SetL)
	require.NotEmpty(t, res.Partition.SetR)
}

func TestBestParallelCutFindsAPartition(t *testing.T) {
	g := nonDecomposable()
	res, ok := fallback.BestParallelCut(g, []string{"a", "b", "c"}, fallback.UnitCost)
	require.True(t, ok)
	require.NotEmpty(t, res.Partition.SetL)
	require.NotEmpty(t, res.Partition.SetR)
}

func TestBestRedoCutFindsAPartition(t *testing.T) {
	g := nonDecomposable()
	res, ok := fallback.BestRedoCut(g, []string{"a", "b", "c"}, []string{"a"}, []string{"a"}, fallback.UnitCost)
	require.True(t, ok)
	require.NotEmpty(t, res.Partition.SetL)
	require.NotEmpty(t, res.Partition.SetR)
}

func TestBestPicksLowestCostWithOperatorTieBreak(t *testing.T) {
	cheap := &fallback.Result{Operator: fallback.Redo, Cost: 1}
	expensive := &fallback.Result{Operator: fallback.Sequence, Cost: 5}
	tiedA := &fallback.Result{Operator: fallback.Parallel, Cost: 1}
	tiedB := &fallback.Result{Operator: fallback.Exclusive, Cost: 1}

	best, ok := fallback.Best(expensive, cheap, tiedA, tiedB, nil)
	require.True(t, ok)
	require.Equal(t, fallback.Exclusive, best.Operator) // exclusive has top priority among cost-1 ties
}
