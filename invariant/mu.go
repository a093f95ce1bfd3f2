// SPDX-License-Identifier: MIT
// Package: cliquespec/invariant
//
// mu.go — star maximisations μ1, μ2 and the combined query.

package invariant

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/transform"
)

// Compute returns λ, μ1 and μ2 of g. ctx is checked between λ evaluations.
func (e *Engine) Compute(ctx context.Context, g *core.Graph) (Invariants, error) {
	var (
		out Invariants
		err error
	)
	if out.Lambda, err = e.Lambda(g); err != nil {
		return Invariants{}, err
	}
	if out.Mu1, err = e.Mu1(ctx, g); err != nil {
		return Invariants{}, err
	}
	if out.Mu2, err = e.Mu2(ctx, g); err != nil {
		return Invariants{}, err
	}

	e.logger.Info("invariants computed",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Float64("lambda", out.Lambda),
		slog.Float64("mu1", out.Mu1),
		slog.Float64("mu2", out.Mu2))

	return out, nil
}

// Mu1 returns max over vertices v of λ(star(g, v)), or 0 if g has no vertices.
func (e *Engine) Mu1(ctx context.Context, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Mu1: %w", core.ErrNilGraph)
	}
	best := 0.0
	for _, v := range g.Vertices() {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("Mu1: %w", err)
		}
		star, err := transform.Star(g, v)
		if err != nil {
			return 0, fmt.Errorf("Mu1: %w", err)
		}
		lambda, err := e.Lambda(star)
		if err != nil {
			return 0, fmt.Errorf("Mu1(%s): %w", v, err)
		}
		if lambda > best {
			best = lambda
		}
	}

	return best, nil
}

// Mu2 returns the maximum over vertices v of the contribution
// λ(S) · e1 · e2 with S = star(g, v), where e1 ≥ e2 are the two largest λ of
// the extensions star(g, w) − V(S), w ∈ S, that still have an edge.
// Fewer than two such extensions contribute 0.
func (e *Engine) Mu2(ctx context.Context, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Mu2: %w", core.ErrNilGraph)
	}
	best := 0.0
	for _, v := range g.Vertices() {
		contribution, err := e.mu2At(ctx, g, v)
		if err != nil {
			return 0, fmt.Errorf("Mu2(%s): %w", v, err)
		}
		if contribution > best {
			best = contribution
		}
	}

	return best, nil
}

func (e *Engine) mu2At(ctx context.Context, g *core.Graph, v core.VertexID) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	star, err := transform.Star(g, v)
	if err != nil {
		return 0, err
	}
	mu1v, err := e.Lambda(star)
	if err != nil {
		return 0, err
	}

	inStar := star.Vertices()
	var extensions []float64
	for _, w := range inStar {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		outer, err := transform.Star(g, w)
		if err != nil {
			return 0, err
		}
		ext, err := transform.Without(outer, inStar)
		if err != nil {
			return 0, err
		}
		if ext.EdgeCount() == 0 {
			continue
		}
		lambda, err := e.Lambda(ext)
		if err != nil {
			return 0, err
		}
		extensions = append(extensions, lambda)
	}
	if len(extensions) < 2 {
		return 0, nil
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(extensions)))

	return mu1v * extensions[0] * extensions[1], nil
}
