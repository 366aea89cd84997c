// Package selfloop implements Component H, the self-loop rewriter (spec
// §4.8): after the initial tree is built, every activity with a self-loop
// edge (x, x) in the original DFG gets its leaf replaced by redo(x, tau) or
// redo(tau, x), depending on whether x occurs in every trace that also
// touches its siblings.
//
// Grounded on original_source/src/add_self_loops.rs: find_parent_and_siblings
// / find_parent_and_siblings_recursive become findParent; the
// sequence/parallel branch's "trace contains any sibling descendant, does it
// also always contain x" rule becomes decideOrientation; the exclusive
// branch's non-exclusive-ancestor walk becomes ancestorGroups. Two
// simplifications from the original, both because the functionality is
// already produced upstream in this module: (1) traces are the already-
// built model.Trace slice from package relations (grouped, deduplicated
// and time-ordered, with no divergence filtering), rather than re-reading
// the OCEL file and re-deriving traces with a second, narrower divergence
// heuristic as add_self_loops.rs's get_traces does; (2) idempotency (spec
// §4.8's closing requirement) falls out for free: rewriteOne only acts on
// sequence/parallel/exclusive parents, so a second pass over an
// already-rewritten leaf (now a child of a redo node) is a no-op, with no
// explicit "already rewritten" flag needed.
package selfloop
