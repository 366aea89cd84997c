package flow

import "github.com/opendfg/ocpt/graph"

// MinSTCut computes the minimum s-t cut of g via Edmonds–Karp (BFS
// augmenting paths over integer capacities), returning the max-flow value
// and the vertex set reachable from s in the final residual graph. By
// max-flow/min-cut duality the flow value equals the sum of capacities of
// the edges crossing from that reachable set to its complement (spec §4.4,
// tested as invariant 7 in spec §8).
//
// Both g's vertices must include source and sink.
func MinSTCut(g *graph.Graph, source, sink string) (*CutResult, error) {
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}

	residual := g.Clone()
	var maxFlow int64
	for {
		path, bottleneck := bfsAugmentingPath(residual, source, sink)
		if path == nil || bottleneck <= 0 {
			break
		}
		maxFlow += bottleneck
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			fwd, _ := residual.Weight(u, v)
			residual.SetEdge(u, v, fwd-bottleneck)
			rev, _ := residual.Weight(v, u)
			residual.SetEdge(v, u, rev+bottleneck)
		}
	}

	reachable := ReachableSet(residual, source)

	var cutEdges []CutEdge
	for _, e := range g.Edges() {
		if reachable[e.From] && !reachable[e.To] {
			cutEdges = append(cutEdges, CutEdge{From: e.From, To: e.To, Capacity: e.Weight})
		}
	}

	return &CutResult{MaxFlow: maxFlow, ReachableFromS: reachable, CutEdges: cutEdges}, nil
}

// bfsAugmentingPath finds the shortest (fewest-edge) positive-capacity path
// from source to sink in the residual graph, visiting successors in sorted
// order (spec §4.4: "ties in BFS traversal are broken by a stable iteration
// order over nodes"). Returns (nil, 0) if no augmenting path exists.
func bfsAugmentingPath(residual *graph.Graph, source, sink string) ([]string, int64) {
	const unbounded = int64(1) << 62

	parent := map[string]string{}
	bottleneck := map[string]int64{source: unbounded}
	visited := map[string]bool{source: true}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range residual.Successors(u) {
			if visited[v] {
				continue
			}
			w, _ := residual.Weight(u, v)
			if w <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if w < bottleneck[u] {
				bottleneck[v] = w
			} else {
				bottleneck[v] = bottleneck[u]
			}
			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					p := parent[cur]
					path = append([]string{p}, path...)
					cur = p
				}

				return path, bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
