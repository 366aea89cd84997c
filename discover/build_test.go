package discover_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/dfg"
	"github.com/opendfg/ocpt/discover"
	"github.com/opendfg/ocpt/fallback"
	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

// render flattens a tree into a label string for easy structural assertions,
// e.g. "sequence(a,b)".
func render(n *model.TreeNode) string {
	if n.IsLeaf() {
		return n.Label()
	}
	s := n.Label() + "("
	for i, c := range n.Children {
		if i > 0 {
			s += ","
		}
		s += render(c)
	}

	return s + ")"
}

func TestBuildSingleActivityIsLeaf(t *testing.T) {
	g := graph.New()
	g.AddVertex("a")

	b := discover.New(nil, nil)
	tree := b.Build(g, []string{"a"}, []string{"a"}, []string{"a"})
	require.Equal(t, "a", render(tree))
}

func TestBuildSequenceS1(t *testing.T) {
	// S1-like: a -> b -> c, a single linear trace.
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)

	b := discover.New(nil, nil)
	tree := b.Build(g, g.Vertices(), []string{"a"}, []string{"c"})
	require.Equal(t, "sequence(a,sequence(b,c))", render(tree))
}

func TestBuildParallelS3(t *testing.T) {
	// S3-like: a and b fully bidirectionally connected, both start/end.
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "a", 1)

	b := discover.New(nil, nil)
	tree := b.Build(g, g.Vertices(), []string{"a", "b"}, []string{"a", "b"})
	require.Equal(t, "parallel(a,b)", render(tree))
}

// TestBuildSequenceThenRedoS4 mirrors spec §8's S4: sequence(a, sequence(redo(b,x), c)).
func TestBuildSequenceThenRedoS4(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "x", 1)
	g.AddEdge("x", "b", 1)
	g.AddEdge("b", "c", 1)

	b := discover.New(nil, nil)
	tree := b.Build(g, g.Vertices(), []string{"a"}, []string{"c"})
	require.Equal(t, "sequence(a,sequence(redo(b,x),c))", render(tree))
}

// TestBuildFlowerFallbackS6 mirrors spec §8's S6: a non-decomposable DFG
// (a->b, b->a, a->c, c->a, b->c) where no perfect cut applies; the fallback
// solvers should still find a cut (this DFG is fallback-decomposable, so the
// flower only triggers if every solver fails or makes no progress).
func TestBuildFlowerFallbackS6(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "a", 1)
	g.AddEdge("a", "c", 1)
	g.AddEdge("c", "a", 1)
	g.AddEdge("b", "c", 1)

	b := discover.New(nil, fallback.UnitCost)
	tree := b.Build(g, g.Vertices(), []string{"a"}, []string{"a", "c"})
	require.False(t, tree.IsLeaf())
	require.Equal(t, []string{"a", "b", "c"}, tree.Activities())
}

func TestBuildAttachesInteractionSets(t *testing.T) {
	g := graph.New()
	g.AddVertex("a")
	pat := &model.Patterns{
		ByActivity: map[string]model.ActivitySets{
			"a": {Related: []string{"order"}},
		},
		Activities: []string{"a"},
	}

	b := discover.New(pat, nil)
	tree := b.Build(g, []string{"a"}, []string{"a"}, []string{"a"})
	require.NotNil(t, tree.Interaction)
	require.Equal(t, []string{"order"}, tree.Interaction.Related)
}

func TestDiscoverWiresLoggerAndMatchesBuild(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b", 1)
	g.AddEdge("b", "c", 1)

	res := &dfg.Result{Graph: g, Start: []string{"a"}, End: []string{"c"}}
	tree := discover.Discover(res, nil, nil, zerolog.Nop())
	require.Equal(t, "sequence(a,sequence(b,c))", render(tree))
}
