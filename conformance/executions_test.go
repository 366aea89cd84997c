package conformance_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/conformance"
	"github.com/opendfg/ocpt/model"
)

func joinAll(seqs [][]string) []string {
	out := make([]string, 0, len(seqs))
	for _, s := range seqs {
		if len(s) == 0 {
			out = append(out, "")

			continue
		}
		joined := s[0]
		for _, a := range s[1:] {
			joined += "," + a
		}
		out = append(out, joined)
	}
	sort.Strings(out)

	return out
}

func TestExecutionsSequenceS1(t *testing.T) {
	// sequence(a, sequence(b, c))
	tree := model.NewOperator(model.KindSequence,
		model.NewLeaf("a", nil),
		model.NewOperator(model.KindSequence, model.NewLeaf("b", nil), model.NewLeaf("c", nil)))

	set := conformance.Executions(tree, 2, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"a,b,c"}, joinAll(set.Sequences))
}

func TestExecutionsParallelS3(t *testing.T) {
	tree := model.NewOperator(model.KindParallel, model.NewLeaf("a", nil), model.NewLeaf("b", nil))

	set := conformance.Executions(tree, 2, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"a,b", "b,a"}, joinAll(set.Sequences))
}

func TestExecutionsExclusive(t *testing.T) {
	tree := model.NewOperator(model.KindExclusive, model.NewLeaf("a", nil), model.NewLeaf("b", nil))

	set := conformance.Executions(tree, 2, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"a", "b"}, joinAll(set.Sequences))
}

// TestExecutionsRedoS4 mirrors spec §8's S4: redo(b, x) unrolled to depth 2
// produces {[b]}, {[b,x,b]}, {[b,x,b,x,b]}.
func TestExecutionsRedoS4(t *testing.T) {
	tree := model.NewOperator(model.KindRedo, model.NewLeaf("b", nil), model.NewLeaf("x", nil))

	set := conformance.Executions(tree, 2, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"b", "b,x,b", "b,x,b,x,b"}, joinAll(set.Sequences))
}

func TestExecutionsRedoDepthZero(t *testing.T) {
	tree := model.NewOperator(model.KindRedo, model.NewLeaf("b", nil), model.NewLeaf("x", nil))

	set := conformance.Executions(tree, 0, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"b"}, joinAll(set.Sequences))
}

func TestExecutionsTauIsEmptyWord(t *testing.T) {
	tree := model.NewOperator(model.KindSequence, model.NewLeaf("a", nil), model.NewTau())

	set := conformance.Executions(tree, 2, 1000)
	require.False(t, set.Truncated)
	require.Equal(t, []string{"a"}, joinAll(set.Sequences))
}

func TestExecutionsCeilingTruncates(t *testing.T) {
	tree := model.NewOperator(model.KindRedo, model.NewLeaf("b", nil), model.NewLeaf("x", nil))

	set := conformance.Executions(tree, 10, 2)
	require.True(t, set.Truncated)
	require.Len(t, set.Sequences, 2)
}

// TestExecutionsPrecisionMonotoneInDepth checks the set property behind the
// redo-depth parameter: a deeper unroll never shrinks the enumerated set,
// so every depth-1 execution is also a depth-2 execution. Precision itself
// is not asserted here; it can rise or fall with depth, since both its
// numerator and its denominator grow.
func TestExecutionsPrecisionMonotoneInDepth(t *testing.T) {
	tree := model.NewOperator(model.KindRedo, model.NewLeaf("b", nil), model.NewLeaf("x", nil))

	shallow := conformance.Executions(tree, 1, 1000)
	deep := conformance.Executions(tree, 2, 1000)
	require.Subset(t, joinAll(deep.Sequences), joinAll(shallow.Sequences))
}
