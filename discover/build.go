package discover

import (
	"github.com/rs/zerolog"

	"github.com/opendfg/ocpt/cuts"
	"github.com/opendfg/ocpt/dfg"
	"github.com/opendfg/ocpt/fallback"
	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

// Builder holds the shared context every recursion level needs: the
// interaction-pattern annotations attached to leaves, and the repair cost
// model fed to the fallback solvers (spec §4.6.1).
type Builder struct {
	Patterns *model.Patterns
	CostFn   fallback.CostFunc
	Logger   zerolog.Logger
}

// New returns a Builder. A nil costFn defaults to fallback.UnitCost; the
// logger defaults to zerolog.Nop(), so callers that don't care about
// discovery diagnostics pay nothing for them.
func New(pat *model.Patterns, costFn fallback.CostFunc) *Builder {
	if costFn == nil {
		costFn = fallback.UnitCost
	}

	return &Builder{Patterns: pat, CostFn: costFn, Logger: zerolog.Nop()}
}

// WithLogger attaches a logger discovery emits Debug (fallback-cut usage)
// and Warn (no-progress downgrade to flower) events to, and returns b for
// chaining.
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.Logger = logger

	return b
}

// Discover runs Component G from Component C's output, the entry point the
// rest of the pipeline wires to (spec §2's "C uses B) -> {DFG, starts,
// ends} -> G"). logger is optional; its zero value silently discards every
// event, same as zerolog.Nop().
func Discover(res *dfg.Result, pat *model.Patterns, costFn fallback.CostFunc, logger zerolog.Logger) *model.TreeNode {
	b := New(pat, costFn).WithLogger(logger)

	return b.Build(res.Graph, res.Graph.Vertices(), res.Start, res.End)
}

// Build is the recursive orchestrator of spec §4.7. g must already be
// restricted to exactly the vertices in activities; callers (including
// Build's own recursive calls) always pass a graph.Induced result alongside
// the activity set it was induced from.
func (b *Builder) Build(g *graph.Graph, activities, starts, ends []string) *model.TreeNode {
	acts := sortedCopy(activities)

	if len(acts) == 0 {
		return model.NewTau()
	}
	if len(acts) == 1 {
		return b.leaf(acts[0])
	}

	if node, ok := b.tryPerfect(g, acts, starts, ends); ok {
		return node
	}
	if node, ok := b.tryFallback(g, acts, starts, ends); ok {
		return node
	}

	b.Logger.Warn().
		Strs("activities", acts).
		Msg("no perfect or fallback cut made progress, downgrading to flower")

	return b.flower(acts)
}

type perfectDetector struct {
	kind model.Kind
	run  func(g *graph.Graph, acts, starts, ends []string) (cuts.Partition, bool)
}

// perfectDetectors is tried in this fixed order, matching spec §4.5's
// enumeration and start_cuts_opti_v2.rs's find_cuts_start.
var perfectDetectors = []perfectDetector{
	{model.KindExclusive, func(g *graph.Graph, acts, _, _ []string) (cuts.Partition, bool) { return cuts.Exclusive(g) }},
	{model.KindSequence, func(g *graph.Graph, acts, _, _ []string) (cuts.Partition, bool) { return cuts.Sequence(g) }},
	{model.KindParallel, func(g *graph.Graph, acts, starts, ends []string) (cuts.Partition, bool) {
		return cuts.Parallel(g, acts, starts, ends)
	}},
	{model.KindRedo, func(g *graph.Graph, acts, starts, ends []string) (cuts.Partition, bool) {
		return cuts.Redo(g, acts, starts, ends)
	}},
}

func (b *Builder) tryPerfect(g *graph.Graph, acts, starts, ends []string) (*model.TreeNode, bool) {
	for _, d := range perfectDetectors {
		part, ok := d.run(g, acts, starts, ends)
		if !ok || noProgress(acts, part) {
			continue
		}

		return b.recurseOn(d.kind, g, part, starts, ends), true
	}

	return nil, false
}

func (b *Builder) tryFallback(g *graph.Graph, acts, starts, ends []string) (*model.TreeNode, bool) {
	var candidates []*fallback.Result
	if r, ok := fallback.BestExclusiveCut(g, acts); ok {
		candidates = append(candidates, r)
	}
	if r, ok := fallback.BestSequenceCut(g, acts, b.CostFn); ok {
		candidates = append(candidates, r)
	}
	if r, ok := fallback.BestParallelCut(g, acts, b.CostFn); ok {
		candidates = append(candidates, r)
	}
	if r, ok := fallback.BestRedoCut(g, acts, starts, ends, b.CostFn); ok {
		candidates = append(candidates, r)
	}

	best, ok := fallback.Best(candidates...)
	if !ok || noProgress(acts, best.Partition) {
		return nil, false
	}

	b.Logger.Debug().
		Str("operator", string(best.Operator)).
		Int64("cost", best.Cost).
		Msg("no perfect cut found, using fallback cut")

	return b.recurseOn(fallbackKind(best.Operator), best.Graph, best.Partition, starts, ends), true
}

// recurseOn builds the operator node for a successful cut and recurses on
// each side, restricting g to that side's activities and re-deriving its
// start/end sets (spec §4.7 step 2/3). g is the DFG this cut was computed
// against: the unmodified incoming graph for a perfect cut, or the repaired
// graph for a fallback cut ("recurse ... using the modified DFG").
func (b *Builder) recurseOn(kind model.Kind, g *graph.Graph, part cuts.Partition, starts, ends []string) *model.TreeNode {
	leftStart, leftEnd := induceEndpoints(g, part.SetL, part.SetR, starts, ends)
	rightStart, rightEnd := induceEndpoints(g, part.SetR, part.SetL, starts, ends)

	left := b.Build(g.Induced(toSet(part.SetL)), part.SetL, leftStart, leftEnd)
	right := b.Build(g.Induced(toSet(part.SetR)), part.SetR, rightStart, rightEnd)

	return model.NewOperator(kind, left, right)
}

// flower is the no-progress fallback (spec §4.7 step 4): a left-folded
// binary exclusive choice over every activity, wrapped in a redo with tau.
func (b *Builder) flower(acts []string) *model.TreeNode {
	node := b.leaf(acts[0])
	for _, a := range acts[1:] {
		node = model.NewOperator(model.KindExclusive, node, b.leaf(a))
	}

	return model.NewOperator(model.KindRedo, node, model.NewTau())
}

func (b *Builder) leaf(activity string) *model.TreeNode {
	var sets *model.ActivitySets
	if b.Patterns != nil {
		if s, ok := b.Patterns.ByActivity[activity]; ok {
			cp := s
			sets = &cp
		}
	}

	return model.NewLeaf(activity, sets)
}

// noProgress guards recursion (spec §4.7 step 4): a cut only makes progress
// if both sides are non-empty and strictly smaller than the incoming set.
func noProgress(acts []string, part cuts.Partition) bool {
	return len(part.SetL) == 0 || len(part.SetR) == 0 ||
		len(part.SetL) >= len(acts) || len(part.SetR) >= len(acts)
}

func fallbackKind(op fallback.Operator) model.Kind {
	switch op {
	case fallback.Sequence:
		return model.KindSequence
	case fallback.Parallel:
		return model.KindParallel
	case fallback.Redo:
		return model.KindRedo
	default:
		return model.KindExclusive
	}
}
