// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// api.go - BuildGraph and Apply.
//
// Contract:
//   - Options resolve once into a builderConfig; constructors only read it.
//   - Constructors run in argument order and stop at the first error.
//   - A failed run leaves whatever the earlier constructors added.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquespec/core"
)

// Constructor adds one topology to g under the resolved cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph returns a fresh graph (created with gopts) holding every
// topology of cons, built under bopts.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := run("BuildGraph", g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply adds the topologies of cons to an existing graph. Labels already
// present in g make the constructor fail with core.ErrDuplicateVertex, so
// callers extending a graph usually pick a distinct ID scheme.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w", core.ErrNilGraph)
	}

	return run("Apply", g, newBuilderConfig(bopts...), cons)
}

func run(op string, g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: constructor #%d is nil: %w", op, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
