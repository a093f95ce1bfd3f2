// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// impl_random.go - Erdős–Rényi G(n,p) sampler.
//
// Contract:
//   - n ≥ 0; n = 0 yields no vertices (an empty draw, filtered by the search).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Each unordered pair {i,j}, i<j, is included independently with probability p.
//
// Determinism:
//   - Trial order: i asc, j asc (j>i); one rng.Float64() draw per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

const (
	methodRandomGNP = "RandomGNP"
	probMin         = 0.0
	probMax         = 1.0
)

// RandomGNP returns a Constructor that samples G(n, p).
func RandomGNP(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomGNP, n, 0); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomGNP, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGNP, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomGNP, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err = addEdge(methodRandomGNP, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
