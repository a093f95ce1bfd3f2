// SPDX-License-Identifier: MIT
// Package: cliquespec/transform
//
// star.go — open-neighbourhood stars and vertex removal.

package transform

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

// Star returns the subgraph of g induced on the open neighbourhood of v.
// v itself is not part of the result.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - core.ErrVertexNotFound if v is not in g.
func Star(g *core.Graph, v core.VertexID) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Star(%s): %w", v, core.ErrNilGraph)
	}
	nbrs, err := g.NeighborSet(v)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	keep := make(map[core.VertexID]bool, len(nbrs))
	for u := range nbrs {
		keep[u] = true
	}

	return core.InducedSubgraph(g, keep), nil
}

// Without returns g with every vertex in drop removed. Vertices of drop that
// are not in g are ignored.
func Without(g *core.Graph, drop []core.VertexID) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("Without: %w", core.ErrNilGraph)
	}

	skip := make(map[core.VertexID]struct{}, len(drop))
	for _, v := range drop {
		skip[v] = struct{}{}
	}
	keep := make(map[core.VertexID]bool)
	for _, v := range g.Vertices() {
		if _, ok := skip[v]; !ok {
			keep[v] = true
		}
	}

	return core.InducedSubgraph(g, keep), nil
}
