// SPDX-License-Identifier: MIT
// Package matrix - canonical constructors for generic Dense matrices.
// Deterministic, sentinel-accurate, and aligned with the package contracts.
//
// Purpose:
//   - Build Dense[T] values from explicit 2D data, constants, zero values and
//     diagonal patterns, with all shape validation delegated to validators.go.
//
// Policy & Contracts:
//   - Zero dimensions are rejected uniformly (ErrInvalidDimensions); there is
//     no empty-matrix value in this package.
//   - FromData requires rectangular input (ErrBadShape on ragged rows) and
//     copies it: the returned Dense never aliases the caller's slices.
//
// Determinism:
//   - Fixed i→j fill orders; single allocation per constructor.

package matrix

// Constructor name constants for unified error wrapping and reducing magic strings.
const (
	opFromData                  = "FromData"
	opFromConstant              = "FromConstant"
	opDefaultFromDimension      = "DefaultFromDimension"
	opDefaultFromRowsAndColumns = "DefaultFromRowsAndColumns"
	opDiagonalFromConstant      = "DiagonalFromConstant"
	opDefaultDiagonal           = "DefaultDiagonal"
)

// FromData builds a Dense matrix from a 2D slice: outer index is the row,
// inner index is the column. Row count is len(data), column count is
// len(data[0]); every inner slice must have the same length.
//
// Implementation:
//   - Stage 1: ValidateRectangular(data) — non-empty and non-ragged.
//   - Stage 2: Allocate Dense(rows, cols) and copy row by row.
//
// Behavior highlights:
//   - Input is copied, never aliased; mutating data afterwards does not
//     affect the returned matrix.
//
// Inputs:
//   - data: rectangular [][]T with at least one row and one column.
//
// Returns:
//   - *Dense[T]: freshly allocated matrix holding a copy of data.
//
// Errors:
//   - ErrInvalidDimensions (empty outer slice or zero-width rows).
//   - ErrBadShape (inner slices of inconsistent lengths).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromData[T Number](data [][]T) (*Dense[T], error) {
	// Validate rectangularity before any allocation.
	if err := ValidateRectangular(data); err != nil {
		return nil, matrixErrorf(opFromData, err)
	}

	// Allocate the target Dense; dimensions are known valid here.
	rows, cols := len(data), len(data[0])
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromData, err)
	}

	// Copy row by row into the flat row-major buffer.
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// FromConstant builds an r×c Dense matrix with every entry equal to v.
//
// Implementation:
//   - Stage 1: NewDense(rows, cols) validates the shape and allocates.
//   - Stage 2: Single flat pass writing v into every slot.
//
// Inputs:
//   - rows, cols: target shape, both must be > 0.
//   - v: the value copied into every entry.
//
// Errors:
//   - ErrInvalidDimensions (non-positive rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromConstant[T Number](rows, cols int, v T) (*Dense[T], error) {
	// Allocate; the constructor enforces the uniform shape policy.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromConstant, err)
	}

	// Fill the flat buffer deterministically 0..n-1.
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// DefaultFromDimension builds an r×c Dense matrix with every entry equal to
// T's zero value. Thin shape-validated wrapper over NewDense.
//
// Errors: ErrInvalidDimensions (non-positive rows or cols).
// Complexity: O(r*c) zeroing by the runtime.
func DefaultFromDimension[T Number](rows, cols int) (*Dense[T], error) {
	// NewDense already yields a zero-valued buffer; nothing more to do.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDefaultFromDimension, err)
	}

	return m, nil
}

// DefaultFromRowsAndColumns is a row/column-oriented alias of
// DefaultFromDimension, kept as a distinct named constructor for API symmetry
// with call sites that think in (rows, columns) rather than in a dimension pair.
//
// Errors: ErrInvalidDimensions (non-positive rows or cols).
// Complexity: O(r*c).
func DefaultFromRowsAndColumns[T Number](rows, cols int) (*Dense[T], error) {
	// Delegate directly; semantics are identical.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDefaultFromRowsAndColumns, err)
	}

	return m, nil
}

// DiagonalFromConstant builds an r×c Dense matrix whose entries (i,i) for
// i < min(r,c) equal v and whose remaining entries are T's zero value.
//
// Implementation:
//   - Stage 1: NewDense(rows, cols) — zero-valued base.
//   - Stage 2: Single i-loop writing v along the main diagonal.
//
// Behavior highlights:
//   - Works for rectangular shapes; the diagonal simply stops at min(r,c).
//
// Errors:
//   - ErrInvalidDimensions (non-positive rows or cols).
//
// Complexity:
//   - Time O(r*c) zeroing + O(min(r,c)) diagonal writes.
func DiagonalFromConstant[T Number](rows, cols int, v T) (*Dense[T], error) {
	// Start from the zero-valued base matrix.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDiagonalFromConstant, err)
	}

	// Write the diagonal up to the shorter dimension.
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	for i := 0; i < minDim; i++ {
		m.data[i*cols+i] = v
	}

	return m, nil
}

// DefaultDiagonal builds an r×c Dense matrix with T's zero value on the
// diagonal — which makes it indistinguishable from DefaultFromDimension,
// since the off-diagonal entries are that same zero value. The constructor
// is kept for API parity with DiagonalFromConstant; prefer NewIdentity when
// a multiplicative unit diagonal is wanted.
//
// Errors: ErrInvalidDimensions (non-positive rows or cols).
// Complexity: O(r*c).
func DefaultDiagonal[T Number](rows, cols int) (*Dense[T], error) {
	// The diagonal value is the zero value, so the zero matrix is the result.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDefaultDiagonal, err)
	}

	return m, nil
}
