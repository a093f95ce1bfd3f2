// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cliquespec/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite label prefixes. Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// vertex returns the original vertex labelled by cfg.idFn(i).
func (cfg builderConfig) vertex(i int) core.VertexID {
	return core.V(cfg.idFn(i))
}
