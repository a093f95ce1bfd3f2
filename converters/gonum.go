// SPDX-License-Identifier: MIT
// Package: cliquespec/converters
//
// gonum.go — one-way adapter from core.Graph to gonum's graph/simple.
//
// Contract:
//   - Node IDs are dense: the i-th vertex of g.Vertices() becomes simple.Node(i).
//   - The mapping back to core.VertexID is kept on the returned Undirected.
//   - The source graph is only read; the gonum graph is owned by the caller.

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/cliquespec/core"
)

// Undirected pairs a gonum undirected graph with the vertex mapping used to build it.
type Undirected struct {
	// Graph is the gonum view of the source graph.
	Graph *simple.UndirectedGraph

	ids   []core.VertexID         // node ID -> vertex
	index map[core.VertexID]int64 // vertex -> node ID
}

// ToGonum converts g into a gonum simple.UndirectedGraph.
// Isolated vertices are carried over as nodes without edges.
//
// Errors:
//   - core.ErrNilGraph: if g is nil.
//
// Complexity: O(V log V + E log E) (sorted snapshots keep node IDs deterministic).
func ToGonum(g *core.Graph) (*Undirected, error) {
	if g == nil {
		return nil, fmt.Errorf("ToGonum: %w", core.ErrNilGraph)
	}

	ids := g.Vertices()
	out := &Undirected{
		Graph: simple.NewUndirectedGraph(),
		ids:   ids,
		index: make(map[core.VertexID]int64, len(ids)),
	}
	for i, v := range ids {
		out.index[v] = int64(i)
		out.Graph.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		out.Graph.SetEdge(simple.Edge{
			F: simple.Node(out.index[e.From]),
			T: simple.Node(out.index[e.To]),
		})
	}

	return out, nil
}

// VertexOf maps a gonum node back to its core.VertexID.
func (u *Undirected) VertexOf(n graph.Node) core.VertexID {
	return u.ids[n.ID()]
}

// VerticesOf maps a slice of gonum nodes back to sorted core.VertexIDs.
func (u *Undirected) VerticesOf(nodes []graph.Node) []core.VertexID {
	out := make([]core.VertexID, len(nodes))
	for i, n := range nodes {
		out[i] = u.VertexOf(n)
	}
	core.SortVertices(out)

	return out
}
