package conformance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendfg/ocpt/conformance"
	"github.com/opendfg/ocpt/model"
)

func ev(activity string) model.TraceEvent {
	return model.TraceEvent{EventID: "e-" + activity, Activity: activity}
}

func TestNormalizeTraceCollapsesSelfLoop(t *testing.T) {
	tr := model.Trace{
		ObjectID:   "o1",
		ObjectType: "order",
		Events:     []model.TraceEvent{ev("a"), ev("b"), ev("b"), ev("b"), ev("c")},
	}

	seq, ok := conformance.NormalizeTrace(tr, []string{"b"})
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, seq)
}

func TestNormalizeTraceRejectsNonConsecutiveRepeat(t *testing.T) {
	tr := model.Trace{
		ObjectID:   "o1",
		ObjectType: "order",
		Events:     []model.TraceEvent{ev("a"), ev("b"), ev("a")},
	}

	_, ok := conformance.NormalizeTrace(tr, nil)
	require.False(t, ok)
}

func TestNormalizeTraceAllowsSelfLoopNonConsecutiveRepeat(t *testing.T) {
	// b appears twice but separated by x; b is a recognized self-loop
	// activity so the trace is not rejected even though the repeats aren't
	// adjacent after collapsing.
	tr := model.Trace{
		ObjectID:   "o1",
		ObjectType: "order",
		Events:     []model.TraceEvent{ev("a"), ev("b"), ev("x"), ev("b"), ev("c")},
	}

	seq, ok := conformance.NormalizeTrace(tr, []string{"b"})
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "x", "b", "c"}, seq)
}

func TestNormalizeTraceNoRepeatsPassesThrough(t *testing.T) {
	tr := model.Trace{
		ObjectID:   "o1",
		ObjectType: "order",
		Events:     []model.TraceEvent{ev("a"), ev("b"), ev("c")},
	}

	seq, ok := conformance.NormalizeTrace(tr, nil)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, seq)
}
