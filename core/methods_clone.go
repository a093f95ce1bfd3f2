// File: methods_clone.go
// Role: Cloning, clearing and comparing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph. The clone shares no maps with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for v, nbrs := range g.adjacency {
		cp := make(map[VertexID]struct{}, len(nbrs))
		for u := range nbrs {
			cp[u] = struct{}{}
		}
		clone.adjacency[v] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to the empty graph.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adjacency = make(map[VertexID]map[VertexID]struct{})
	g.edgeCount = 0
	g.mu.Unlock()
}

// Equal reports whether g and h have the same vertex set and the same edge set.
// Complexity: O(V + E).
func (g *Graph) Equal(h *Graph) bool {
	if g == h {
		return true
	}
	if g == nil || h == nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(g.adjacency) != len(h.adjacency) || g.edgeCount != h.edgeCount {
		return false
	}
	for v, nbrs := range g.adjacency {
		other, ok := h.adjacency[v]
		if !ok || len(other) != len(nbrs) {
			return false
		}
		for u := range nbrs {
			if _, ok = other[u]; !ok {
				return false
			}
		}
	}

	return true
}
