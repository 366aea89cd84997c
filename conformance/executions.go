package conformance

import "github.com/opendfg/ocpt/model"

// ExecutionSet is the (possibly truncated) language a tree generates: the
// distinct activity sequences Executions(T) can produce (spec §4.9), deduped
// since fitness/precision are defined over set membership and cardinality.
type ExecutionSet struct {
	Sequences [][]string
	Truncated bool
}

// builder accumulates distinct sequences up to ceiling, deduping by a
// joined-string key so cross products (sequence/parallel/redo) don't
// recount the same execution twice.
type builder struct {
	ceiling   int
	seen      map[string]struct{}
	out       [][]string
	truncated bool
}

func newBuilder(ceiling int) *builder {
	return &builder{ceiling: ceiling, seen: map[string]struct{}{}}
}

// add reports whether the caller should keep generating: false means the
// ceiling has been hit (or was already hit) and the caller must stop.
func (b *builder) add(seq []string) bool {
	if b.truncated {
		return false
	}
	key := joinSeq(seq)
	if _, dup := b.seen[key]; dup {
		return true
	}
	if len(b.out) >= b.ceiling {
		b.truncated = true

		return false
	}
	b.seen[key] = struct{}{}
	b.out = append(b.out, seq)

	return true
}

func joinSeq(seq []string) string {
	// A NUL separator can't occur in an activity name parsed from JSON
	// strings in practice; this mirrors patterns.sortedJoin's convention
	// for collision-free set keys.
	out := make([]byte, 0, 16*len(seq))
	for i, s := range seq {
		if i > 0 {
			out = append(out, 0)
		}
		out = append(out, s...)
	}

	return string(out)
}

func copySeq(seq []string) []string {
	return append([]string(nil), seq...)
}

func concatSeq(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)

	return out
}

// Executions enumerates the language of n (spec §4.9), unrolling redo nodes
// up to depth repetitions (spec §9's open question, resolved as a
// configurable parameter) and stopping once ceiling distinct sequences have
// been produced, in which case ExecutionSet.Truncated is true.
func Executions(n *model.TreeNode, depth, ceiling int) ExecutionSet {
	seqs, truncated := collect(n, depth, ceiling)

	return ExecutionSet{Sequences: seqs, Truncated: truncated}
}

func collect(n *model.TreeNode, depth, ceiling int) ([][]string, bool) {
	switch n.Kind {
	case model.KindActivity:
		return [][]string{{n.Activity}}, false
	case model.KindTau:
		return [][]string{{}}, false
	case model.KindSequence:
		return collectSequence(n, depth, ceiling)
	case model.KindExclusive:
		return collectExclusive(n, depth, ceiling)
	case model.KindParallel:
		return collectParallel(n, depth, ceiling)
	case model.KindRedo:
		return collectRedo(n, depth, ceiling)
	default:
		return nil, false
	}
}

func collectSequence(n *model.TreeNode, depth, ceiling int) ([][]string, bool) {
	l, lt := collect(n.Children[0], depth, ceiling)
	r, rt := collect(n.Children[1], depth, ceiling)

	bdr := newBuilder(ceiling)
outer:
	for _, u := range l {
		for _, v := range r {
			if !bdr.add(concatSeq(u, v)) {
				break outer
			}
		}
	}

	return bdr.out, lt || rt || bdr.truncated
}

func collectExclusive(n *model.TreeNode, depth, ceiling int) ([][]string, bool) {
	l, lt := collect(n.Children[0], depth, ceiling)
	r, rt := collect(n.Children[1], depth, ceiling)

	bdr := newBuilder(ceiling)
	for _, u := range l {
		if !bdr.add(copySeq(u)) {
			break
		}
	}
	for _, v := range r {
		if !bdr.add(copySeq(v)) {
			break
		}
	}

	return bdr.out, lt || rt || bdr.truncated
}

func collectParallel(n *model.TreeNode, depth, ceiling int) ([][]string, bool) {
	l, lt := collect(n.Children[0], depth, ceiling)
	r, rt := collect(n.Children[1], depth, ceiling)

	bdr := newBuilder(ceiling)
outer:
	for _, u := range l {
		for _, v := range r {
			if !interleaveInto(u, v, nil, bdr) {
				break outer
			}
		}
	}

	return bdr.out, lt || rt || bdr.truncated
}

// interleaveInto enumerates every interleaving of a and b (spec §4.9:
// "parallel(l,r) -> all interleavings of every u,v"), adding each to bdr.
// Returns false as soon as bdr signals the ceiling was hit.
func interleaveInto(a, b, prefix []string, bdr *builder) bool {
	if bdr.truncated {
		return false
	}
	if len(a) == 0 {
		return bdr.add(concatSeq(prefix, b))
	}
	if len(b) == 0 {
		return bdr.add(concatSeq(prefix, a))
	}

	withA := append(copySeq(prefix), a[0])
	if !interleaveInto(a[1:], b, withA, bdr) {
		return false
	}

	withB := append(copySeq(prefix), b[0])

	return interleaveInto(a, b[1:], withB, bdr)
}

// collectRedo unrolls redo(body, repeatBody) up to depth repetitions (spec
// §4.9): depth 0 is Ex(body); each additional repetition appends one more
// repeatBody-then-body pair. Grounded on spec §8 S4: with depth 2, {b,x}
// produces {[b]}, {[b,x,b]}, {[b,x,b,x,b]} — one, then two, then three
// occurrences of the body around one and two loop-backs.
func collectRedo(n *model.TreeNode, depth, ceiling int) ([][]string, bool) {
	body, bt := collect(n.Children[0], depth, ceiling)
	repeat, rt := collect(n.Children[1], depth, ceiling)

	bdr := newBuilder(ceiling)

	var rec func(prefix []string, cycles int) bool
	rec = func(prefix []string, cycles int) bool {
		if !bdr.add(copySeq(prefix)) {
			return false
		}
		if cycles >= depth {
			return true
		}
		for _, v := range repeat {
			for _, u := range body {
				next := concatSeq(concatSeq(prefix, v), u)
				if !rec(next, cycles+1) {
					return false
				}
			}
		}

		return true
	}

	for _, u1 := range body {
		if !rec(copySeq(u1), 0) {
			break
		}
	}

	return bdr.out, bt || rt || bdr.truncated
}
