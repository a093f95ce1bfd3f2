// Package core provides the thread-safe, simple undirected Graph that every
// other cliquespec package builds on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, no self-loops, no parallel edges.
//   - Vertices are VertexID values {Label, Mirror}. Mirror vertices are the ones
//     created by the blow-up transform; Partner() maps a vertex to its mirror and
//     back, so polarity never has to be recovered by slicing strings.
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() are sorted
//     (originals before mirrors, then by label).
//   - One sync.RWMutex guards adjacency; read-only sharing across goroutines is safe.
//
// Construction surface (consumed by the CLI):
//
//	AddVertex(v) error       // ErrDuplicateVertex if present, no mutation
//	AddEdge(u, v) error      // ErrVertexNotFound / ErrDuplicateEdge / ErrLoopNotAllowed
//	RemoveVertex(v) error    // also removes incident edges
//	Clear()                  // reset to the empty graph
//
// Views never mutate their input and hand back a graph owned by the caller:
//
//	Clone()                  // O(V+E) deep copy
//	InducedSubgraph(g, keep) // vertices in keep, edges with both ends kept
//
// Quick ASCII example (a path on three vertices):
//
//	a───b───c
package core
