// SPDX-License-Identifier: MIT
// Package: cliquespec/invariant
//
// engine.go — Engine, options, λ and Inspect.

package invariant

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cliquespec/clique"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/matrix"
	"github.com/katalvlaran/cliquespec/transform"
	"github.com/katalvlaran/cliquespec/transition"
)

// ErrCatalogTooLarge is returned when a valid catalog exceeds the configured limit.
var ErrCatalogTooLarge = errors.New("invariant: clique catalog exceeds limit")

// Invariants holds the three scalars of one graph.
type Invariants struct {
	Lambda float64 `json:"lambda" yaml:"lambda"`
	Mu1    float64 `json:"mu1" yaml:"mu1"`
	Mu2    float64 `json:"mu2" yaml:"mu2"`
}

// Inspection exposes the intermediate objects of one λ evaluation.
type Inspection struct {
	Blown    *core.Graph
	Catalog  *clique.Catalog
	Matrix   *matrix.Dense
	Dominant complex128
}

// Engine evaluates invariants. The zero value is not usable; call NewEngine.
// An Engine holds no per-graph state and may be shared between goroutines.
type Engine struct {
	logger       *slog.Logger
	catalogLimit int
}

// Option configures an Engine.
type Option func(e *Engine)

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("invariant: WithLogger(nil)")
	}
	return func(e *Engine) { e.logger = l }
}

// WithCatalogLimit rejects catalogs with more than n cliques (n ≤ 0: unlimited).
func WithCatalogLimit(n int) Option {
	return func(e *Engine) { e.catalogLimit = n }
}

// NewEngine returns an Engine with opts applied over the defaults
// (slog.Default, no catalog limit).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lambda returns the real part of the dominant eigenvalue of the transition
// matrix of the blown-up g. A graph whose blow-up has no edges has λ = 0.
func (e *Engine) Lambda(g *core.Graph) (float64, error) {
	in, err := e.Inspect(g)
	if err != nil {
		return 0, fmt.Errorf("Lambda: %w", err)
	}
	return real(in.Dominant), nil
}

// Inspect runs the λ pipeline on g and returns every intermediate object.
// When the blow-up has no edges the catalog and matrix are empty and Dominant is 0.
//
// Errors:
//   - core.ErrNilGraph, transform.ErrAlreadyBlownUp from the blow-up.
//   - clique.ErrTooLarge from the enumeration.
//   - ErrCatalogTooLarge if the catalog exceeds the configured limit.
func (e *Engine) Inspect(g *core.Graph) (*Inspection, error) {
	blown, err := transform.Blowup(g)
	if err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	in := &Inspection{Blown: blown, Catalog: clique.NewCatalog()}
	if blown.EdgeCount() == 0 {
		in.Matrix, _ = matrix.NewSquare(0)
		return in, nil
	}

	if in.Catalog, err = clique.ValidCatalog(blown); err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	if e.catalogLimit > 0 && in.Catalog.Len() > e.catalogLimit {
		return nil, fmt.Errorf("Inspect: %d cliques, limit %d: %w", in.Catalog.Len(), e.catalogLimit, ErrCatalogTooLarge)
	}
	if in.Matrix, err = transition.Build(blown, in.Catalog); err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}
	if in.Dominant, err = matrix.DominantEigenvalue(in.Matrix); err != nil {
		return nil, fmt.Errorf("Inspect: %w", err)
	}

	e.logger.Debug("lambda evaluated",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("cliques", in.Catalog.Len()),
		slog.Float64("lambda", real(in.Dominant)))

	return in, nil
}
