// SPDX-License-Identifier: MIT
// Package: cliquespec/transform
//
// blowup.go — mirror blow-up and its inverse.

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

// ErrAlreadyBlownUp is returned by Blowup when the input already carries mirror vertices.
var ErrAlreadyBlownUp = errors.New("transform: graph already contains mirror vertices")

// Blowup returns G′: all vertices of g, one mirror per vertex (isolated mirrors
// included), each edge of g, and the three mirror edges per edge.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrAlreadyBlownUp if g has a mirror vertex; mirrors are never mirrored again.
//
// Complexity: O(V + E).
func Blowup(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Blowup: %w", core.ErrNilGraph)
	}
	if g.HasMirrors() {
		return nil, fmt.Errorf("Blowup: %w", ErrAlreadyBlownUp)
	}

	vertices := g.Vertices()
	all := make([]core.VertexID, 0, 2*len(vertices))
	for _, v := range vertices {
		all = append(all, v, v.Partner())
	}
	out := core.NewGraph(core.WithVertices(all...))

	for _, e := range g.Edges() {
		u, v := e.From, e.To
		for _, pair := range [4][2]core.VertexID{
			{u, v},
			{u.Partner(), v.Partner()},
			{u.Partner(), v},
			{u, v.Partner()},
		} {
			if err := out.AddEdge(pair[0], pair[1]); err != nil {
				return nil, fmt.Errorf("Blowup: %w", err)
			}
		}
	}

	return out, nil
}

// Unblowup drops every mirror vertex of g together with its incident edges.
// Unblowup(Blowup(G)) has exactly the vertex and edge sets of G.
func Unblowup(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Unblowup: %w", core.ErrNilGraph)
	}

	keep := make(map[core.VertexID]bool)
	for _, v := range g.Vertices() {
		if !v.Mirror {
			keep[v] = true
		}
	}

	return core.InducedSubgraph(g, keep), nil
}
