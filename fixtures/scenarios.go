package fixtures

import (
	"fmt"

	"github.com/opendfg/ocpt/ocel"
)

// S1Sequence builds spec §8's S1: five objects each tracing [a,b,c],
// yielding DFG a→b:5, b→c:5 and the expected tree
// sequence(a, sequence(b, c)).
func S1Sequence() (*ocel.Log, string) {
	b := newLogBuilder(DefaultObjectType)
	for i := 0; i < 5; i++ {
		b.trace(fmt.Sprintf("o%d", i), "a", "b", "c")
	}

	return b.build(), DefaultObjectType
}

// S2Exclusive builds spec §8's S2: three objects tracing [a,b] and three
// tracing [a,c], yielding DFG a→b:3, a→c:3 and the expected tree
// sequence(a, exclusive(b, c)).
func S2Exclusive() (*ocel.Log, string) {
	b := newLogBuilder(DefaultObjectType)
	for i := 0; i < 3; i++ {
		b.trace(fmt.Sprintf("ab%d", i), "a", "b")
	}
	for i := 0; i < 3; i++ {
		b.trace(fmt.Sprintf("ac%d", i), "a", "c")
	}

	return b.build(), DefaultObjectType
}

// S3Parallel builds spec §8's S3: two objects tracing [a,b,c,d] and two
// tracing [a,c,b,d], yielding the expected tree
// sequence(a, sequence(parallel(b,c), d)).
func S3Parallel() (*ocel.Log, string) {
	b := newLogBuilder(DefaultObjectType)
	for i := 0; i < 2; i++ {
		b.trace(fmt.Sprintf("bd%d", i), "a", "b", "c", "d")
	}
	for i := 0; i < 2; i++ {
		b.trace(fmt.Sprintf("cd%d", i), "a", "c", "b", "d")
	}

	return b.build(), DefaultObjectType
}

// S4Redo builds spec §8's S4: one object per unrolling of the loop around
// b (zero, one, and two repetitions), yielding the expected tree
// sequence(a, sequence(redo(b,x), c)).
func S4Redo() (*ocel.Log, string) {
	b := newLogBuilder(DefaultObjectType)
	b.trace("o0", "a", "b", "c")
	b.trace("o1", "a", "b", "x", "b", "c")
	b.trace("o2", "a", "b", "x", "b", "x", "b", "c")

	return b.build(), DefaultObjectType
}

// S5SelfLoop builds spec §8's S5: a single object whose trace holds x→x
// ten times in a row between a and b, the case the rewriter turns into
// redo(x, tau).
func S5SelfLoop() (*ocel.Log, string) {
	activities := make([]string, 0, 13)
	activities = append(activities, "a")
	for i := 0; i < 11; i++ {
		activities = append(activities, "x")
	}
	activities = append(activities, "b")

	b := newLogBuilder(DefaultObjectType)
	b.trace("o0", activities...)

	return b.build(), DefaultObjectType
}

// S6Fallback builds spec §8's S6: a non-decomposable DFG
// a→b, b→a, a→c, c→a, b→c with no perfect cut, split across three
// objects so no single trace reveals the full cycle.
func S6Fallback() (*ocel.Log, string) {
	b := newLogBuilder(DefaultObjectType)
	b.trace("o0", "a", "b", "a", "c")
	b.trace("o1", "b", "c")
	b.trace("o2", "c", "a")

	return b.build(), DefaultObjectType
}
