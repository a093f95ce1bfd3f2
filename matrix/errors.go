// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels, optionally wrapped with matrixErrorf;
// callers and tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates negative dimensions, or exactly one zero dimension.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates FromRows received rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrMatrixEigenFailed indicates that the eigenvalue factorisation did not succeed.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// Operation tags for matrixErrorf.
const (
	opFromRows = "FromRows"
	opSpectrum = "Spectrum"
	opDominant = "DominantEigenvalue"
	opRadius   = "SpectralRadius"
	opNonZero  = "NonZero"
)

// matrixErrorf wraps err with an operation tag, keeping the "Op: underlying" shape.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
