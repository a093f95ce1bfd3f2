// SPDX-License-Identifier: MIT
// Package: cliquespec/transition
//
// transition.go — move-validity predicate and matrix builder.
//
// Determinism:
//   - Row/column i is catalog entry i; the matrix depends only on g and the catalog order.

package transition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquespec/clique"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/matrix"
)

// ErrNilCatalog indicates a nil *clique.Catalog passed to Build.
var ErrNilCatalog = errors.New("transition: nil catalog")

// Link is a vertex set, as returned by CommonLink.
type Link map[core.VertexID]struct{}

// CommonLink returns the intersection of the open neighbourhoods in g of
// every vertex of alpha. An empty alpha has an empty link.
//
// Errors:
//   - core.ErrVertexNotFound if a vertex of alpha is not in g.
func CommonLink(g *core.Graph, alpha clique.Clique) (Link, error) {
	if g == nil {
		return nil, fmt.Errorf("CommonLink: %w", core.ErrNilGraph)
	}
	nbrs := make(map[core.VertexID]map[core.VertexID]struct{}, len(alpha))
	for _, v := range alpha {
		set, err := g.NeighborSet(v)
		if err != nil {
			return nil, fmt.Errorf("CommonLink: %w", err)
		}
		nbrs[v] = set
	}

	return intersect(alpha, nbrs), nil
}

// CanMove reports whether beta is a valid move from alpha in g.
func CanMove(g *core.Graph, alpha, beta clique.Clique) (bool, error) {
	link, err := CommonLink(g, alpha)
	if err != nil {
		return false, fmt.Errorf("CanMove(%s,%s): %w", alpha, beta, err)
	}

	return canMove(alpha, beta, link), nil
}

// Build returns the transition matrix of cat over g: cell (i,j) is 1 when
// cat.At(j) is a valid move from cat.At(i), 0 otherwise. An empty catalog
// yields the 0×0 matrix.
//
// Errors: core.ErrNilGraph, ErrNilCatalog, and core.ErrVertexNotFound when a
// catalog vertex is missing from g.
//
// Complexity: O(V·Δ + K·(c·Δ) + K²·c) for K cliques of size ≤ c and max degree Δ.
func Build(g *core.Graph, cat *clique.Catalog) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: %w", core.ErrNilGraph)
	}
	if cat == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilCatalog)
	}
	k := cat.Len()
	m, err := matrix.NewSquare(k)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	nbrs := make(map[core.VertexID]map[core.VertexID]struct{}, g.VertexCount())
	for _, v := range g.Vertices() {
		nbrs[v], _ = g.NeighborSet(v)
	}

	for i := 0; i < k; i++ {
		alpha := cat.At(i)
		for _, v := range alpha {
			if _, ok := nbrs[v]; !ok {
				return nil, fmt.Errorf("Build: clique %s: %s: %w", alpha, v, core.ErrVertexNotFound)
			}
		}
		link := intersect(alpha, nbrs)
		for j := 0; j < k; j++ {
			if canMove(alpha, cat.At(j), link) {
				if err = m.Set(i, j, 1); err != nil {
					return nil, fmt.Errorf("Build: %w", err)
				}
			}
		}
	}

	return m, nil
}

func intersect(alpha clique.Clique, nbrs map[core.VertexID]map[core.VertexID]struct{}) Link {
	link := make(Link)
	if len(alpha) == 0 {
		return link
	}
	for u := range nbrs[alpha[0]] {
		link[u] = struct{}{}
	}
	for _, v := range alpha[1:] {
		for u := range link {
			if _, ok := nbrs[v][u]; !ok {
				delete(link, u)
			}
		}
	}

	return link
}

func canMove(alpha, beta clique.Clique, link Link) bool {
	inBeta := beta.Set()
	for _, v := range alpha {
		if _, ok := inBeta[v.Partner()]; ok {
			return false
		}
	}

	inAlpha := alpha.Set()
	for _, v := range beta {
		if _, ok := inAlpha[v]; ok {
			continue
		}
		if _, ok := link[v]; ok {
			return false
		}
	}

	return true
}
