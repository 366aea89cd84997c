package cuts

import (
	"sort"

	"github.com/opendfg/ocpt/graph"
)

// Exclusive tests the undirected-connected-components cut (spec §4.5): if
// the DFG, viewed as undirected, splits into two or more components, SetL
// is the first (lexicographically smallest representative) component and
// SetR the union of the rest. ok is false if the graph is a single
// component.
func Exclusive(g *graph.Graph) (Partition, bool) {
	undirected := g.Undirected()
	components := connectedComponents(undirected)
	if len(components) < 2 {
		return Partition{}, false
	}

	return Partition{SetL: components[0], SetR: flatten(components[1:])}, true
}

// connectedComponents returns the undirected connected components of g,
// each sorted, with components themselves ordered by their smallest
// member so the result is fully deterministic.
func connectedComponents(g *graph.Graph) [][]string {
	visited := map[string]bool{}
	var components [][]string

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		comp := []string{}
		queue := []string{v}
		visited[v] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, nbr := range g.Successors(u) {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		sort.Strings(comp)
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})

	return components
}

func flatten(groups [][]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	sort.Strings(out)

	return out
}
