package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquespec/matrix"
)

func TestNewDense_Dimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
	assert.Equal(t, "", empty.String())
}

func TestDense_AtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 7))
	v, _ := m.At(0, 1)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "[1, 0]\n[0, 1]\n", m.String())
	assert.Equal(t, []float64{0, 1}, m.RawRow(1))
	assert.Nil(t, m.RawRow(2))
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNonZero(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1, 1}, {0, 0, 1}})
	require.NoError(t, err)
	n, err := matrix.NonZero(m)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = matrix.NonZero(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSortRowsBySum(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 1, 1}, {0, 0, 1}, {1, 0, 1}, {1, 0, 0}})
	require.NoError(t, err)

	sorted := matrix.SortRowsBySum(m)
	assert.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}}, sorted.ToRows())
	assert.Equal(t, []float64{1, 1, 1}, m.RawRow(0), "input untouched")
	assert.Nil(t, matrix.SortRowsBySum(nil))
}
