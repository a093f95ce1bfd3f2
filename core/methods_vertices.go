// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in canonical VertexID order.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts v.
//
// Behavior highlights:
//   - Adding a vertex that already exists returns ErrDuplicateVertex and leaves
//     the graph untouched.
//
// Errors:
//   - ErrEmptyLabel: if v.Label == "".
//   - ErrDuplicateVertex: if v is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(v VertexID) error {
	if v.Label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[v]; exists {
		return fmt.Errorf("AddVertex(%s): %w", v, ErrDuplicateVertex)
	}
	g.adjacency[v] = make(map[VertexID]struct{})

	return nil
}

// EnsureVertex inserts v if it is missing and is a no-op otherwise.
// Transforms use it when rebuilding graphs vertex by vertex.
func (g *Graph) EnsureVertex(v VertexID) error {
	if v.Label == "" {
		return ErrEmptyLabel
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.adjacency[v]; !exists {
		g.adjacency[v] = make(map[VertexID]struct{})
	}

	return nil
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v and every incident edge.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) RemoveVertex(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[v]
	if !exists {
		return fmt.Errorf("RemoveVertex(%s): %w", v, ErrVertexNotFound)
	}
	for u := range nbrs {
		delete(g.adjacency[u], v)
		g.edgeCount--
	}
	delete(g.adjacency, v)

	return nil
}

// Vertices returns all vertex IDs in canonical order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	out := make([]VertexID, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	g.mu.RUnlock()

	SortVertices(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbours of v.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
func (g *Graph) Degree(v VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// SortVertices sorts vs in canonical VertexID order, in place.
func SortVertices(vs []VertexID) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
}
