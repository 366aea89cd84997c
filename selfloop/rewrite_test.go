package selfloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
	"github.com/opendfg/ocpt/selfloop"
)

func trace(objectID string, activities ...string) model.Trace {
	events := make([]model.TraceEvent, len(activities))
	for i, a := range activities {
		events[i] = model.TraceEvent{EventID: objectID + string(rune('0'+i)), Activity: a, Timestamp: time.Unix(int64(i), 0)}
	}

	return model.Trace{ObjectID: objectID, ObjectType: "order", Events: events}
}

func TestRewriteSequenceParentAllTracesContain(t *testing.T) {
	root := model.NewOperator(model.KindSequence, model.NewLeaf("a", nil), model.NewLeaf("b", nil))
	dfg := graph.New()
	dfg.AddEdge("b", "b", 1)

	traces := []model.Trace{trace("o1", "a", "b"), trace("o2", "a", "b")}

	selfloop.Rewrite(root, dfg, traces)

	b := root.Children[1]
	require.Equal(t, model.KindRedo, b.Kind)
	require.Equal(t, "b", b.Children[0].Activity)
	require.Equal(t, model.KindTau, b.Children[1].Kind)
}

func TestRewriteSequenceParentNotAllTracesContain(t *testing.T) {
	root := model.NewOperator(model.KindSequence, model.NewLeaf("a", nil), model.NewLeaf("b", nil))
	dfg := graph.New()
	dfg.AddEdge("b", "b", 1)

	traces := []model.Trace{trace("o1", "a", "b"), trace("o2", "a")}

	selfloop.Rewrite(root, dfg, traces)

	b := root.Children[1]
	require.Equal(t, model.KindRedo, b.Kind)
	require.Equal(t, model.KindTau, b.Children[0].Kind)
	require.Equal(t, "b", b.Children[1].Activity)
}

func TestRewriteExclusiveParentWalksToNonExclusiveAncestor(t *testing.T) {
	excl := model.NewOperator(model.KindExclusive, model.NewLeaf("b", nil), model.NewLeaf("c", nil))
	root := model.NewOperator(model.KindSequence, excl, model.NewLeaf("d", nil))

	dfg := graph.New()
	dfg.AddEdge("b", "b", 1)

	traces := []model.Trace{
		trace("o1", "b", "d"), // contains d, not c -> relevant, contains b
		trace("o2", "c", "d"), // contains d but also c -> excluded
	}

	selfloop.Rewrite(root, dfg, traces)

	b := root.Children[0].Children[0]
	require.Equal(t, model.KindRedo, b.Kind)
	require.Equal(t, "b", b.Children[0].Activity)
	require.Equal(t, model.KindTau, b.Children[1].Kind)
}

func TestRewriteIsIdempotent(t *testing.T) {
	root := model.NewOperator(model.KindSequence, model.NewLeaf("a", nil), model.NewLeaf("b", nil))
	dfg := graph.New()
	dfg.AddEdge("b", "b", 1)
	traces := []model.Trace{trace("o1", "a", "b")}

	selfloop.Rewrite(root, dfg, traces)
	first := root.Children[1]
	selfloop.Rewrite(root, dfg, traces)
	second := root.Children[1]

	require.Same(t, first, second)
}

func TestRewriteNoSelfLoopsIsNoop(t *testing.T) {
	root := model.NewOperator(model.KindSequence, model.NewLeaf("a", nil), model.NewLeaf("b", nil))
	dfg := graph.New()
	dfg.AddEdge("a", "b", 1)

	selfloop.Rewrite(root, dfg, nil)

	require.Equal(t, model.KindActivity, root.Children[1].Kind)
}
