// SPDX-License-Identifier: MIT
// Package matrix: eigenvalues of general square matrices.
//
// Contract:
//   - Inputs are square; 0×0 has the empty spectrum and dominant eigenvalue 0.
//   - The input is never mutated; values are copied into a gonum mat.Dense.
//   - Dominant selection is deterministic for a given spectrum (see TieTolerance).

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// TieTolerance is the modulus window inside which eigenvalues count as tied
// for the dominant position.
const TieTolerance = 1e-9

// Spectrum returns all eigenvalues of the square matrix m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on bad input.
//   - ErrMatrixEigenFailed if the factorisation does not succeed.
//
// Complexity: O(n³).
func Spectrum(m Matrix) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSpectrum, err)
	}
	n := m.Rows()
	if n == 0 {
		return nil, nil
	}

	data := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opSpectrum, err)
				}
				data[i*n+j] = v
			}
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenNone); !ok {
		return nil, matrixErrorf(opSpectrum, ErrMatrixEigenFailed)
	}

	return eig.Values(nil), nil
}

// DominantEigenvalue returns the eigenvalue of largest modulus of m.
//
// Among eigenvalues whose modulus lies within TieTolerance of the maximum,
// the one with the largest real part wins, then the one with the smallest
// |imag|. For a non-negative matrix this picks the Perron root, so
// [[0,1],[1,0]] yields 1 rather than -1. A 0×0 matrix yields 0.
func DominantEigenvalue(m Matrix) (complex128, error) {
	values, err := Spectrum(m)
	if err != nil {
		return 0, matrixErrorf(opDominant, err)
	}

	return pickDominant(values), nil
}

// SpectralRadius returns max |λ| over the spectrum of m, or 0 for 0×0.
func SpectralRadius(m Matrix) (float64, error) {
	values, err := Spectrum(m)
	if err != nil {
		return 0, matrixErrorf(opRadius, err)
	}
	radius := 0.0
	for _, v := range values {
		radius = math.Max(radius, cmplx.Abs(v))
	}

	return radius, nil
}

func pickDominant(values []complex128) complex128 {
	if len(values) == 0 {
		return 0
	}
	maxAbs := 0.0
	for _, v := range values {
		maxAbs = math.Max(maxAbs, cmplx.Abs(v))
	}

	best := complex(math.NaN(), 0)
	for _, v := range values {
		if cmplx.Abs(v) < maxAbs-TieTolerance {
			continue
		}
		if cmplx.IsNaN(best) ||
			real(v) > real(best)+TieTolerance ||
			(math.Abs(real(v)-real(best)) <= TieTolerance && math.Abs(imag(v)) < math.Abs(imag(best))) {
			best = v
		}
	}

	return best
}
