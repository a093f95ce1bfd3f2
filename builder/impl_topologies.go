// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// impl_topologies.go — deterministic fixtures: Path, Cycle, Complete, Star,
// Wheel and CompleteBipartite.
//
// Determinism:
//   - Vertices are added via cfg.idFn in ascending index order.
//   - Edges are emitted in a fixed order per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodComplete          = "Complete"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodCompleteBipartite = "CompleteBipartite"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

// Path builds P_n: vertices 0..n-1 and edges {i,i+1} (n ≥ 1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(methodPath, g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n (n ≥ 1), pairs emitted in lexicographic (i,j), i<j order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Star builds a hub CenterVertexID joined to leaves idFn(1..n-1) (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		hub := core.V(CenterVertexID)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, hub, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.vertex(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(methodStar, g, hub, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds W_n = C_{n-1} plus a hub CenterVertexID joined to every rim vertex (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := core.V(CenterVertexID)
		if err := g.AddVertex(hub); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, hub, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodWheel, g, hub, cfg.vertex(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with labels "{left}{i}" and "{right}{j}" (n1, n2 ≥ 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: partition sizes %d,%d must be ≥ 1: %w",
				methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left, err := addVertices(methodCompleteBipartite, g, builderConfig{idFn: SymbolNumberIDFn(cfg.leftPrefix)}, n1)
		if err != nil {
			return err
		}
		right, err := addVertices(methodCompleteBipartite, g, builderConfig{idFn: SymbolNumberIDFn(cfg.rightPrefix)}, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(methodCompleteBipartite, g, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
