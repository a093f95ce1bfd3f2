// SPDX-License-Identifier: MIT
// Package: cliquespec/clique
//
// enumerate.go — maximal cliques, the valid catalog and exhaustive enumeration.
//
// Determinism:
//   - Maximal cliques are sorted with Less before expansion.
//   - Subsets are generated by ascending bitmask; first occurrence wins.

package clique

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/cliquespec/converters"
	"github.com/katalvlaran/cliquespec/core"
)

// Maximal returns every maximal clique of g. Isolated vertices form singleton
// cliques; an empty graph yields none.
func Maximal(g *core.Graph) ([]Clique, error) {
	u, err := converters.ToGonum(g)
	if err != nil {
		return nil, fmt.Errorf("Maximal: %w", err)
	}

	raw := topo.BronKerbosch(u.Graph)
	out := make([]Clique, 0, len(raw))
	for _, nodes := range raw {
		out = append(out, Clique(u.VerticesOf(nodes)))
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })

	return out, nil
}

// ValidCatalog expands every maximal clique of g into its non-empty subsets,
// drops those for which HasInverse holds, and deduplicates by vertex set.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrTooLarge if a maximal clique has more than MaxSubsetOrder vertices.
func ValidCatalog(g *core.Graph) (*Catalog, error) {
	maximal, err := Maximal(g)
	if err != nil {
		return nil, fmt.Errorf("ValidCatalog: %w", err)
	}

	cat := NewCatalog()
	for _, m := range maximal {
		if len(m) > MaxSubsetOrder {
			return nil, fmt.Errorf("ValidCatalog: maximal clique of %d vertices: %w", len(m), ErrTooLarge)
		}
		for mask := uint32(1); mask < uint32(1)<<len(m); mask++ {
			sub := subset(m, mask)
			if HasInverse(sub) {
				continue
			}
			cat.Add(sub)
		}
	}

	return cat, nil
}

// All returns every clique of g with at least one vertex, found by testing
// each vertex subset. It includes singletons and non-maximal cliques and
// applies no mirror filtering.
//
// Errors:
//   - core.ErrNilGraph if g is nil.
//   - ErrTooLarge if g has more than MaxPowersetOrder vertices.
//
// Complexity: O(2^V · V).
func All(g *core.Graph) (*Catalog, error) {
	if g == nil {
		return nil, fmt.Errorf("All: %w", core.ErrNilGraph)
	}
	vertices := g.Vertices()
	n := len(vertices)
	if n > MaxPowersetOrder {
		return nil, fmt.Errorf("All: %d vertices: %w", n, ErrTooLarge)
	}

	// adj[i] is the neighbourhood of vertices[i] as a bitmask over vertices.
	adj := make([]uint32, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && g.HasEdge(vertices[i], vertices[j]) {
				adj[i] |= 1 << j
			}
		}
	}

	cat := NewCatalog()
	for mask := uint32(1); mask < uint32(1)<<n; mask++ {
		if isClique(mask, adj) {
			cat.Add(subset(vertices, mask))
		}
	}

	return cat, nil
}

// IsClique reports whether every pair of distinct vertices in vs is adjacent in g.
func IsClique(g *core.Graph, vs []core.VertexID) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !g.HasEdge(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}

func isClique(mask uint32, adj []uint32) bool {
	for i := range adj {
		bit := uint32(1) << i
		if mask&bit == 0 {
			continue
		}
		if mask&^bit&^adj[i] != 0 {
			return false
		}
	}
	return true
}

func subset(vs []core.VertexID, mask uint32) Clique {
	out := make(Clique, 0, len(vs))
	for i, v := range vs {
		if mask&(1<<i) != 0 {
			out = append(out, v)
		}
	}
	return out
}
