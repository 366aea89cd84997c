package cuts

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
)

// tarjanState carries the bookkeeping Tarjan's algorithm needs across its
// recursive visits: per-vertex DFS index and low-link, the active stack,
// and membership, plus the components collected so far.
type tarjanState struct {
	g          *graph.Graph
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	next       int
	components [][]string
}

// stronglyConnectedComponents returns the strongly connected components of
// g (spec §4.5 sequence cut), each sorted, visiting vertices in sorted
// order for determinism. Components themselves are returned in discovery
// order, which callers that need a canonical order should re-sort.
func stronglyConnectedComponents(g *graph.Graph) [][]string {
	st := &tarjanState{
		g:       g,
		index:   map[string]int{},
		lowlink: map[string]int{},
		onStack: map[string]bool{},
	}

	for _, v := range g.Vertices() {
		if _, visited := st.index[v]; !visited {
			st.strongConnect(v)
		}
	}

	for _, comp := range st.components {
		sort.Strings(comp)
	}

	return st.components
}

func (st *tarjanState) strongConnect(v string) {
	st.index[v] = st.next
	st.lowlink[v] = st.next
	st.next++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, w := range st.g.Successors(v) {
		if _, visited := st.index[w]; !visited {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] == st.index[v] {
		var comp []string
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		st.components = append(st.components, comp)
	}
}
