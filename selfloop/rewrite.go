package selfloop

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
	"github.com/opendfg/ocpt/model"
)

// Rewrite mutates root in place, replacing the leaf of every self-looping
// activity in dfg with a redo node (spec §4.8), and returns root for
// convenience.
func Rewrite(root *model.TreeNode, dfg *graph.Graph, traces []model.Trace) *model.TreeNode {
	for _, x := range SelfLoopActivities(dfg) {
		rewriteOne(root, x, traces)
	}

	return root
}

// SelfLoopActivities returns the sorted activities with a (x, x) edge in
// dfg. Exported so package conformance's trace-normalization step (spec
// §4.9) can collapse consecutive duplicates of the same activities this
// package turns into redo nodes.
func SelfLoopActivities(dfg *graph.Graph) []string {
	var out []string
	for _, v := range dfg.Vertices() {
		if dfg.HasEdge(v, v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

func rewriteOne(root *model.TreeNode, x string, traces []model.Trace) {
	parent, idx, path, ok := findParent(root, x, nil)
	if !ok {
		return
	}

	siblingDesc := siblingDescendants(parent, idx)

	switch parent.Kind {
	case model.KindSequence, model.KindParallel:
		relevant := filterContainsAny(traces, siblingDesc)
		replaceWithRedo(parent, idx, x, allContain(relevant, x))

	case model.KindExclusive:
		firstGroup, secondGroup, found := ancestorGroups(path)
		if !found {
			firstGroup, secondGroup = root.Activities(), nil
		}

		exclude := toSet(append([]string{x}, siblingDesc...))
		sameBranch := diffSlice(firstGroup, exclude)

		relevant := traces
		if len(secondGroup) > 0 {
			relevant = filterContainsAny(relevant, secondGroup)
		}
		if len(sameBranch) > 0 {
			relevant = filterNotContainsAny(relevant, sameBranch)
		}
		if len(siblingDesc) > 0 {
			relevant = filterNotContainsAny(relevant, siblingDesc)
		}

		selfLoopFirst := len(relevant) == 0 || allContain(relevant, x)
		replaceWithRedo(parent, idx, x, selfLoopFirst)

	default:
		// Parent is redo (already rewritten, a prior pass's work) or x is
		// the tree's sole node: nothing to do, keeping the rewrite
		// idempotent.
	}
}

// findParent walks node looking for a direct KindActivity child named
// target, returning that child's parent, its index among the parent's
// children, and the ancestor path from root down to (but excluding) the
// parent (original_source's find_parent_and_siblings_recursive /
// find_non_exclusive_ancestor_recursive combined into one traversal).
func findParent(node *model.TreeNode, target string, path []*model.TreeNode) (parent *model.TreeNode, idx int, ancestors []*model.TreeNode, ok bool) {
	for i, c := range node.Children {
		if c.Kind == model.KindActivity && c.Activity == target {
			return node, i, path, true
		}
	}

	nextPath := append(append([]*model.TreeNode{}, path...), node)
	for _, c := range node.Children {
		if p, i, a, found := findParent(c, target, nextPath); found {
			return p, i, a, true
		}
	}

	return nil, 0, nil, false
}

// siblingDescendants collects every activity leaf under parent's children
// other than the one at excludeIdx.
func siblingDescendants(parent *model.TreeNode, excludeIdx int) []string {
	var out []string
	for i, c := range parent.Children {
		if i == excludeIdx {
			continue
		}
		collectActivities(c, &out)
	}
	sort.Strings(out)

	return out
}

func collectActivities(n *model.TreeNode, out *[]string) {
	if n.Kind == model.KindActivity {
		*out = append(*out, n.Activity)
	}
	for _, c := range n.Children {
		collectActivities(c, out)
	}
}

// ancestorGroups walks path (nearest ancestor last) for the first non-
// exclusive node and returns the activity-leaf sets under its first two
// children. found is false if every ancestor in path is exclusive.
func ancestorGroups(path []*model.TreeNode) (first, second []string, found bool) {
	for i := len(path) - 1; i >= 0; i-- {
		anc := path[i]
		if anc.Kind == model.KindExclusive || len(anc.Children) < 2 {
			continue
		}
		var f, s []string
		collectActivities(anc.Children[0], &f)
		collectActivities(anc.Children[1], &s)

		return f, s, true
	}

	return nil, nil, false
}

func replaceWithRedo(parent *model.TreeNode, idx int, activity string, selfLoopFirst bool) {
	leaf := model.NewLeaf(activity, parent.Children[idx].Interaction)
	tau := model.NewTau()

	if selfLoopFirst {
		parent.Children[idx] = model.NewOperator(model.KindRedo, leaf, tau)
	} else {
		parent.Children[idx] = model.NewOperator(model.KindRedo, tau, leaf)
	}
}

func filterContainsAny(traces []model.Trace, activities []string) []model.Trace {
	if len(activities) == 0 {
		return nil
	}
	set := toSet(activities)
	var out []model.Trace
	for _, tr := range traces {
		if tr.ContainsAny(set) {
			out = append(out, tr)
		}
	}

	return out
}

func filterNotContainsAny(traces []model.Trace, activities []string) []model.Trace {
	set := toSet(activities)
	var out []model.Trace
	for _, tr := range traces {
		if !tr.ContainsAny(set) {
			out = append(out, tr)
		}
	}

	return out
}

func allContain(traces []model.Trace, activity string) bool {
	for _, tr := range traces {
		if !tr.Contains(activity) {
			return false
		}
	}

	return true
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

func diffSlice(items []string, exclude map[string]struct{}) []string {
	var out []string
	for _, it := range items {
		if _, ok := exclude[it]; !ok {
			out = append(out, it)
		}
	}

	return out
}
