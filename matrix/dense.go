// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice.

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Both dimensions must be positive, except for the empty 0×0 matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 || (rows == 0) != (cols == 0) {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix; n == 0 yields the empty matrix.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// FromRows builds a Dense from a slice of equal-length rows.
// An empty rows slice yields the 0×0 matrix.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d: %w", i, ErrRaggedRows))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRow returns a copy of row i, or nil if i is out of range.
func (m *Dense) RawRow(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String renders one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// NonZero counts the entries of m that are not exactly zero.
func NonZero(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNonZero, err)
	}
	count := 0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNonZero, err)
			}
			if v != 0 {
				count++
			}
		}
	}

	return count, nil
}

// ToRows returns the entries of m as a fresh slice of rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = m.RawRow(i)
	}

	return out
}

// SortRowsBySum returns a copy of m whose rows are ordered by ascending row
// sum; rows with equal sums keep their relative order. Columns are untouched.
func SortRowsBySum(m *Dense) *Dense {
	if m == nil {
		return nil
	}
	order := make([]int, m.r)
	sums := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		order[i] = i
		for j := 0; j < m.c; j++ {
			sums[i] += m.data[i*m.c+j]
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return sums[order[a]] < sums[order[b]] })

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for dst, src := range order {
		copy(out.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c])
	}

	return out
}
