package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/dfg"
	"github.com/opendfg/ocpt/fixtures"
	"github.com/opendfg/ocpt/patterns"
	"github.com/opendfg/ocpt/relations"
)

func TestS1SequenceYieldsExpectedDFG(t *testing.T) {
	log, _ := fixtures.S1Sequence()

	res, err := relations.Build(log, false)
	require.NoError(t, err)

	traces := relations.Traces(res.Relations)
	pat := patterns.Build(res.Relations)
	out := dfg.Build(traces, pat)

	ab, ok := out.Graph.Weight("a", "b")
	require.True(t, ok)
	require.Equal(t, int64(5), ab)
	bc, ok := out.Graph.Weight("b", "c")
	require.True(t, ok)
	require.Equal(t, int64(5), bc)
	require.Equal(t, []string{"a"}, out.Start)
	require.Equal(t, []string{"c"}, out.End)
}

func TestS6FallbackYieldsNonDecomposableDFG(t *testing.T) {
	log, _ := fixtures.S6Fallback()

	res, err := relations.Build(log, false)
	require.NoError(t, err)

	traces := relations.Traces(res.Relations)
	pat := patterns.Build(res.Relations)
	out := dfg.Build(traces, pat)

	require.True(t, out.Graph.HasEdge("a", "b"))
	require.True(t, out.Graph.HasEdge("b", "a"))
	require.True(t, out.Graph.HasEdge("a", "c"))
	require.True(t, out.Graph.HasEdge("c", "a"))
	require.True(t, out.Graph.HasEdge("b", "c"))
	require.False(t, out.Graph.HasEdge("c", "b"))
}
