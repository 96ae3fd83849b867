// Package matrix_test contains unit tests for the Dense constructors
// (FromData, FromConstant, default and diagonal variants).
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromDataShapeAndValues verifies shape inference and row-major copy order.
func TestFromDataShapeAndValues(t *testing.T) {
	m, err := matrix.FromData([][]int{{1, 2}, {3, 4}}) // build from explicit 2D data
	require.NoError(t, err)                            // rectangular input must succeed

	require.Equal(t, 2, m.Rows()) // outer length becomes the row count
	require.Equal(t, 2, m.Cols()) // inner length becomes the column count

	// every entry lands at its (row, col) position
	require.Equal(t, 1, MustAt[int](t, m, 0, 0))
	require.Equal(t, 2, MustAt[int](t, m, 0, 1))
	require.Equal(t, 3, MustAt[int](t, m, 1, 0))
	require.Equal(t, 4, MustAt[int](t, m, 1, 1))
}

// TestFromDataRagged ensures inconsistent inner lengths fail with ErrBadShape.
func TestFromDataRagged(t *testing.T) {
	_, err := matrix.FromData([][]int{{1, 2, 3}, {4, 5}}) // second row is short
	require.ErrorIs(t, err, matrix.ErrBadShape)           // expect the shape sentinel

	_, err = matrix.FromData([][]float64{{1}, {2}, {3, 4}}) // last row is long
	require.ErrorIs(t, err, matrix.ErrBadShape)             // expect the shape sentinel
}

// TestFromDataEmpty ensures the uniform no-empty-matrix policy applies to FromData.
func TestFromDataEmpty(t *testing.T) {
	_, err := matrix.FromData([][]int{})                 // no rows at all
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected by the shape policy

	_, err = matrix.FromData([][]int{{}, {}})            // rows with zero width
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected by the shape policy
}

// TestFromDataCopiesInput verifies the matrix never aliases the caller's slices.
func TestFromDataCopiesInput(t *testing.T) {
	data := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.FromData(data)
	require.NoError(t, err)

	data[0][0] = 99 // mutate the source after construction

	require.Equal(t, 1, MustAt[int](t, m, 0, 0)) // the matrix keeps its own copy
}

// TestFromConstantFills checks shape and uniform fill for several shapes and types.
func TestFromConstantFills(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		m, err := matrix.FromConstant(tc.rows, tc.cols, 7.5) // constant-filled matrix
		require.NoError(t, err)
		require.Equal(t, tc.rows, m.Rows())
		require.Equal(t, tc.cols, m.Cols())

		var i, j int
		for i = 0; i < tc.rows; i++ {
			for j = 0; j < tc.cols; j++ {
				require.Equal(t, 7.5, MustAt[float64](t, m, i, j)) // every entry equals the constant
			}
		}
	}
}

// TestFromConstantInvalidDimensions ensures the constructor enforces the shape policy.
func TestFromConstantInvalidDimensions(t *testing.T) {
	_, err := matrix.FromConstant(0, 3, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromConstant(3, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDefaultConstructorsAgree verifies DefaultFromDimension and
// DefaultFromRowsAndColumns yield identical zero-valued matrices.
func TestDefaultConstructorsAgree(t *testing.T) {
	byDim, err := matrix.DefaultFromDimension[int](2, 4) // dimension-pair spelling
	require.NoError(t, err)
	byRC, err := matrix.DefaultFromRowsAndColumns[int](2, 4) // rows/columns spelling
	require.NoError(t, err)

	MustEqual[int](t, byDim, byRC) // aliases must agree element-wise

	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 4; j++ {
			require.Zero(t, MustAt[int](t, byDim, i, j)) // every entry is the zero value
		}
	}
}

// TestDiagonalFromConstant covers square and rectangular diagonals.
func TestDiagonalFromConstant(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"square_3x3", 3, 3},
		{"tall_3x2", 3, 2},
		{"wide_2x3", 2, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.DiagonalFromConstant(tc.rows, tc.cols, 9)
			require.NoError(t, err)

			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v := MustAt[int](t, m, i, j)
					if i == j { // diagonal stops at min(rows, cols) implicitly
						require.Equal(t, 9, v)
					} else {
						require.Zero(t, v) // off-diagonal entries stay at the zero value
					}
				}
			}
		})
	}
}

// TestDefaultDiagonalDegeneracy documents that DefaultDiagonal is
// indistinguishable from DefaultFromDimension: the diagonal value is the
// zero value, same as every other entry.
func TestDefaultDiagonalDegeneracy(t *testing.T) {
	diag, err := matrix.DefaultDiagonal[float64](4, 4)
	require.NoError(t, err)
	zero, err := matrix.DefaultFromDimension[float64](4, 4)
	require.NoError(t, err)

	MustEqual[float64](t, zero, diag) // both are the 4×4 zero matrix
}

// TestDiagonalInvalidDimensions ensures diagonal constructors share the shape policy.
func TestDiagonalInvalidDimensions(t *testing.T) {
	_, err := matrix.DiagonalFromConstant(0, 2, 1.0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.DefaultDiagonal[int](2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
