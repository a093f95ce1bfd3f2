// SPDX-License-Identifier: MIT
// Package: cliquespec/transform
//
// join.go — complement graph and the join test.

package transform

import (
	"fmt"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/cliquespec/converters"
	"github.com/katalvlaran/cliquespec/core"
)

// Complement returns the graph on the same vertices whose edges are exactly
// the non-edges of g.
//
// Complexity: O(V²).
func Complement(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Complement: %w", core.ErrNilGraph)
	}

	vertices := g.Vertices()
	out := core.NewGraph(core.WithVertices(vertices...))
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if g.HasEdge(vertices[i], vertices[j]) {
				continue
			}
			if err := out.AddEdge(vertices[i], vertices[j]); err != nil {
				return nil, fmt.Errorf("Complement: %w", err)
			}
		}
	}

	return out, nil
}

// IsJoin reports whether g is the join of two non-empty vertex-disjoint parts,
// i.e. whether the complement of g splits into at least two connected
// components. Components always cover every vertex, so only their number is
// checked. Graphs with fewer than two vertices are never joins; nil is not a join.
func IsJoin(g *core.Graph) bool {
	if g == nil || g.VertexCount() < 2 {
		return false
	}
	comp, err := Complement(g)
	if err != nil {
		return false
	}
	u, err := converters.ToGonum(comp)
	if err != nil {
		return false
	}

	return len(topo.ConnectedComponents(u.Graph)) >= 2
}
