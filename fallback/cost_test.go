package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/fallback"
	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

func TestNewDataDrivenCostForGraphPrefersImpliedEdge(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "c", 5)

	traces := []model.Trace{
		{ObjectID: "o1", Events: []model.TraceEvent{{Activity: "a"}, {Activity: "b"}, {Activity: "c"}}},
		{ObjectID: "o2", Events: []model.TraceEvent{{Activity: "a"}, {Activity: "b"}, {Activity: "c"}}},
		{ObjectID: "o3", Events: []model.TraceEvent{{Activity: "a"}, {Activity: "d"}}},
	}

	costFn := fallback.NewDataDrivenCostForGraph(traces, g)

	// a->b is implied in 2/3 of a-traces; a->d in 1/3: more frequent
	// follow-ups must cost no more than rarer ones.
	require.LessOrEqual(t, costFn("a", "b"), costFn("a", "d"))
}

func TestNewDataDrivenCostForGraphNoEdgesDefaultsToUnitScale(t *testing.T) {
	g := graph.New()
	costFn := fallback.NewDataDrivenCostForGraph(nil, g)
	require.GreaterOrEqual(t, costFn("a", "b"), int64(1))
}
