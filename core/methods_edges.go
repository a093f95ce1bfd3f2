// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns canonical edges sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v.
//
// Both endpoints must already exist; use EnsureVertex first to create them.
//
// Errors:
//   - ErrLoopNotAllowed: if u == v.
//   - ErrVertexNotFound: if u or v is absent.
//   - ErrDuplicateEdge: if u and v are already adjacent.
//
// No partial mutation happens on any error path.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID) error {
	if u == v {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nu, ok := g.adjacency[u]
	if !ok {
		return fmt.Errorf("AddEdge(%s,%s): %s: %w", u, v, u, ErrVertexNotFound)
	}
	nv, ok := g.adjacency[v]
	if !ok {
		return fmt.Errorf("AddEdge(%s,%s): %s: %w", u, v, v, ErrVertexNotFound)
	}
	if _, dup := nu[v]; dup {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, ErrDuplicateEdge)
	}

	nu[v] = struct{}{}
	nv[u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge disconnects u and v.
//
// Errors:
//   - ErrEdgeNotFound: if u and v are not adjacent (or either is absent).
func (g *Graph) RemoveEdge(u, v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%s,%s): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns every edge once, canonical orientation, sorted.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u.Less(v) {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.mu.RUnlock()

	SortEdges(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// SortEdges sorts es by (From, To) in canonical VertexID order, in place.
func SortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From.Less(es[j].From)
		}
		return es[i].To.Less(es[j].To)
	})
}
