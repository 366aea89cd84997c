package flow

import "github.com/opendfg/ocpt/graph"

// IsReachable reports whether b is reachable from a by following positive-
// weight directed edges of g (spec §4.4). a == b is always reachable.
func IsReachable(g *graph.Graph, a, b string) bool {
	if a == b {
		return g.HasVertex(a)
	}

	return ReachableSet(g, a)[b]
}

// ReachableSet returns the set of vertices reachable from start (inclusive)
// via a BFS over positive-weight directed edges, visiting successors in
// sorted order so ties resolve deterministically (spec §4.4, §5).
func ReachableSet(g *graph.Graph, start string) map[string]bool {
	visited := map[string]bool{start: true}
	if !g.HasVertex(start) {
		return visited
	}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Successors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return visited
}

// ReachableWithoutCrossing returns the set of vertices reachable from start
// without ever traversing into (or through) any vertex in barrier — used by
// the redo-cut detector (spec §4.5) to compute "reachable from start without
// crossing end" and its mirror.
func ReachableWithoutCrossing(g *graph.Graph, start string, barrier map[string]bool) map[string]bool {
	visited := map[string]bool{}
	if !g.HasVertex(start) {
		return visited
	}
	// start itself is always included even if it is also in barrier, since
	// the redo detector tests reachability starting at barrier-adjacent
	// nodes themselves.
	visited[start] = true
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if barrier[u] && u != start {
			continue
		}
		for _, v := range g.Successors(u) {
			if visited[v] {
				continue
			}
			if barrier[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return visited
}
