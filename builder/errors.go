// SPDX-License-Identifier: MIT
// Package: cliquespec/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is(err, ErrX). Implementations attach context
// with "%s: ...: %w" using the constructor's method tag.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a topology (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownScheme indicates a topology or ID-scheme name that cannot be parsed.
var ErrUnknownScheme = errors.New("builder: unknown topology or id scheme")
