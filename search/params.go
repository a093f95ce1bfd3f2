// SPDX-License-Identifier: MIT
// Package: cliquespec/search
//
// params.go — trial parameters and run configuration.

package search

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/cliquespec/clique"
)

// ErrInvalidParams indicates an inconsistent Params or Config.
var ErrInvalidParams = errors.New("search: invalid parameters")

// Params bounds a single trial.
type Params struct {
	// MinOrder..MaxOrder is the range of k, the order of G2.
	MinOrder int `yaml:"min_order"`
	MaxOrder int `yaml:"max_order"`
	// MinIncrease..MaxIncrease is the range of inc; G1 has k+inc vertices.
	MinIncrease int `yaml:"min_increase"`
	MaxIncrease int `yaml:"max_increase"`
	// MaxCliques filters out pairs where either graph has more cliques (0 = no cap).
	MaxCliques int `yaml:"max_cliques"`
	// Epsilon is the slack in ρ1 ≥ ρ2 - Epsilon.
	Epsilon float64 `yaml:"epsilon"`
}

// DefaultParams returns k ∈ [1,15], inc ∈ [2,3], no clique cap, Epsilon 1e-9.
func DefaultParams() Params {
	return Params{
		MinOrder:    1,
		MaxOrder:    15,
		MinIncrease: 2,
		MaxIncrease: 3,
		Epsilon:     1e-9,
	}
}

// Validate reports the first inconsistency as ErrInvalidParams.
func (p Params) Validate() error {
	switch {
	case p.MinOrder < 1:
		return fmt.Errorf("min_order=%d < 1: %w", p.MinOrder, ErrInvalidParams)
	case p.MaxOrder < p.MinOrder:
		return fmt.Errorf("max_order=%d < min_order=%d: %w", p.MaxOrder, p.MinOrder, ErrInvalidParams)
	case p.MinIncrease < 0:
		return fmt.Errorf("min_increase=%d < 0: %w", p.MinIncrease, ErrInvalidParams)
	case p.MaxIncrease < p.MinIncrease:
		return fmt.Errorf("max_increase=%d < min_increase=%d: %w", p.MaxIncrease, p.MinIncrease, ErrInvalidParams)
	case p.MaxOrder+p.MaxIncrease > clique.MaxPowersetOrder:
		return fmt.Errorf("max_order+max_increase=%d > %d: %w",
			p.MaxOrder+p.MaxIncrease, clique.MaxPowersetOrder, ErrInvalidParams)
	case p.MaxCliques < 0:
		return fmt.Errorf("max_cliques=%d < 0: %w", p.MaxCliques, ErrInvalidParams)
	case p.Epsilon < 0:
		return fmt.Errorf("epsilon=%g < 0: %w", p.Epsilon, ErrInvalidParams)
	}
	return nil
}

// Config configures a Searcher.
type Config struct {
	Params Params `yaml:",inline"`

	// Workers is the number of trial goroutines.
	Workers int `yaml:"workers"`
	// Seed seeds worker i with Seed+i.
	Seed int64 `yaml:"seed"`
	// MaxTrials caps the number of trials started (0 = unlimited).
	MaxTrials int64 `yaml:"max_trials"`
	// Timeout caps the wall-clock time of Run (0 = none).
	Timeout time.Duration `yaml:"timeout"`
	// ProgressEvery logs a progress line every N trials (0 = never).
	ProgressEvery int64 `yaml:"progress_every"`
}

// DefaultConfig returns DefaultParams with one worker per CPU, no caps and
// progress every 1000 trials.
func DefaultConfig() Config {
	return Config{
		Params:        DefaultParams(),
		Workers:       runtime.GOMAXPROCS(0),
		ProgressEvery: 1000,
	}
}

// Validate checks c and its Params.
func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workers=%d < 1: %w", c.Workers, ErrInvalidParams)
	case c.MaxTrials < 0:
		return fmt.Errorf("max_trials=%d < 0: %w", c.MaxTrials, ErrInvalidParams)
	case c.Timeout < 0:
		return fmt.Errorf("timeout=%s < 0: %w", c.Timeout, ErrInvalidParams)
	case c.ProgressEvery < 0:
		return fmt.Errorf("progress_every=%d < 0: %w", c.ProgressEvery, ErrInvalidParams)
	}
	return nil
}
