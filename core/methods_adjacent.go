// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - Neighbors() returns IDs in canonical VertexID order.

package core

import "fmt"

// Neighbors returns the open neighbourhood of v, sorted.
//
// Errors:
//   - ErrVertexNotFound: if v is absent.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[v]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors(%s): %w", v, ErrVertexNotFound)
	}
	out := make([]VertexID, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	g.mu.RUnlock()

	SortVertices(out)

	return out, nil
}

// NeighborSet returns a fresh set holding the open neighbourhood of v.
// The caller owns the returned map.
//
// Errors:
//   - ErrVertexNotFound: if v is absent.
func (g *Graph) NeighborSet(v VertexID) (map[VertexID]struct{}, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("NeighborSet(%s): %w", v, ErrVertexNotFound)
	}
	out := make(map[VertexID]struct{}, len(nbrs))
	for u := range nbrs {
		out[u] = struct{}{}
	}

	return out, nil
}

// AdjacencyList returns a snapshot vertex -> sorted neighbours.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[VertexID][]VertexID {
	g.mu.RLock()
	result := make(map[VertexID][]VertexID, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		buf := make([]VertexID, 0, len(nbrs))
		for u := range nbrs {
			buf = append(buf, u)
		}
		result[v] = buf
	}
	g.mu.RUnlock()

	for _, buf := range result {
		SortVertices(buf)
	}

	return result
}
