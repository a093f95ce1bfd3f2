// SPDX-License-Identifier: MIT
// Package: cliquespec/search
//
// trial.go — one randomized trial and the admissibility predicate.
//
// Determinism:
//   - Draw order per trial: k, inc, p1, edges of G1, p2, edges of G2.

package search

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/cliquespec/builder"
	"github.com/katalvlaran/cliquespec/clique"
	"github.com/katalvlaran/cliquespec/core"
	"github.com/katalvlaran/cliquespec/matrix"
	"github.com/katalvlaran/cliquespec/transform"
	"github.com/katalvlaran/cliquespec/transition"
)

// Status classifies a trial.
type Status int

const (
	// Filtered trials were not evaluated (clique counts, join filter or clique cap).
	Filtered Status = iota
	// Consistent trials satisfied ρ1 ≥ ρ2 - ε.
	Consistent
	// Counterexample trials violated it.
	Counterexample
)

func (s Status) String() string {
	switch s {
	case Filtered:
		return "filtered"
	case Consistent:
		return "consistent"
	case Counterexample:
		return "counterexample"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is everything a trial observed. G*/Cliques* are always set;
// M*/Rho* only when the pair was evaluated.
type Outcome struct {
	Status Status
	Reason string

	P1, P2             float64
	G1, G2             *core.Graph
	Cliques1, Cliques2 *clique.Catalog
	M1, M2             *matrix.Dense
	Rho1, Rho2         float64

	// Filled in by the Searcher.
	Seq      int64
	Worker   int
	Duration time.Duration
}

// TrialFunc is the signature of Trial; Searcher accepts substitutes.
type TrialFunc func(rng *rand.Rand, p Params) (Outcome, error)

// Evaluation is the clique spectral radius of a raw graph with its inputs.
type Evaluation struct {
	Cliques *clique.Catalog
	Matrix  *matrix.Dense
	Radius  float64
}

// CliqueSpectralRadius enumerates every clique of g (no blow-up), builds the
// transition matrix over them and returns its spectral radius.
func CliqueSpectralRadius(g *core.Graph) (Evaluation, error) {
	cat, err := clique.All(g)
	if err != nil {
		return Evaluation{}, fmt.Errorf("CliqueSpectralRadius: %w", err)
	}
	return evaluate(g, cat)
}

func evaluate(g *core.Graph, cat *clique.Catalog) (Evaluation, error) {
	m, err := transition.Build(g, cat)
	if err != nil {
		return Evaluation{}, fmt.Errorf("CliqueSpectralRadius: %w", err)
	}
	r, err := matrix.SpectralRadius(m)
	if err != nil {
		return Evaluation{}, fmt.Errorf("CliqueSpectralRadius: %w", err)
	}
	return Evaluation{Cliques: cat, Matrix: m, Radius: r}, nil
}

// MeetCondition reports whether a pair is admissible: both graphs have a
// vertex and neither is a join.
func MeetCondition(g1, g2 *core.Graph) bool {
	if g1 == nil || g2 == nil || g1.VertexCount() == 0 || g2.VertexCount() == 0 {
		return false
	}
	return !transform.IsJoin(g1) && !transform.IsJoin(g2)
}

// Trial draws one graph pair from rng and classifies it. It is deterministic
// in the state of rng and p.
func Trial(rng *rand.Rand, p Params) (Outcome, error) {
	k := p.MinOrder + rng.Intn(p.MaxOrder-p.MinOrder+1)
	inc := p.MinIncrease + rng.Intn(p.MaxIncrease-p.MinIncrease+1)

	var (
		out Outcome
		err error
	)
	opts := []builder.BuilderOption{builder.WithRand(rng)}
	out.P1 = rng.Float64()
	if out.G1, err = builder.BuildGraph(nil, opts, builder.RandomGNP(k+inc, out.P1)); err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}
	out.P2 = rng.Float64()
	if out.G2, err = builder.BuildGraph(nil, opts, builder.RandomGNP(k, out.P2)); err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}

	if out.Cliques1, err = clique.All(out.G1); err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}
	if out.Cliques2, err = clique.All(out.G2); err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}

	n1, n2 := out.Cliques1.Len(), out.Cliques2.Len()
	switch {
	case p.MaxCliques > 0 && (n1 > p.MaxCliques || n2 > p.MaxCliques):
		out.Reason = "clique cap"
		return out, nil
	case n1 <= n2:
		out.Reason = "clique count"
		return out, nil
	case !MeetCondition(out.G1, out.G2):
		out.Reason = "join"
		return out, nil
	}

	e1, err := evaluate(out.G1, out.Cliques1)
	if err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}
	e2, err := evaluate(out.G2, out.Cliques2)
	if err != nil {
		return Outcome{}, fmt.Errorf("Trial: %w", err)
	}
	out.M1, out.Rho1 = e1.Matrix, e1.Radius
	out.M2, out.Rho2 = e2.Matrix, e2.Radius

	if out.Rho1 >= out.Rho2-p.Epsilon {
		out.Status = Consistent
	} else {
		out.Status = Counterexample
	}

	return out, nil
}
