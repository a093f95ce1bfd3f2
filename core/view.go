// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph owned by the caller.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

// InducedSubgraph returns a new Graph induced by the vertex set keep:
// the result contains every vertex v of g with keep[v] == true and every
// edge of g whose endpoints are both kept. Keys of keep that are not in g
// are ignored. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[VertexID]bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := range g.adjacency {
		if keep[v] {
			out.adjacency[v] = make(map[VertexID]struct{})
		}
	}
	for v, nbrs := range out.adjacency {
		for u := range g.adjacency[v] {
			if !keep[u] {
				continue
			}
			nbrs[u] = struct{}{}
			if v.Less(u) {
				out.edgeCount++
			}
		}
	}

	return out
}
