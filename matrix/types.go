// SPDX-License-Identifier: MIT

// Package matrix: domain types for generic dense matrices.
// This file intentionally contains ONLY the element constraint and the public
// Matrix interface. Errors live in errors.go, validators in validators.go,
// constructors in builder.go per the package conventions.
package matrix

// Number is the element capability set required by every matrix operation:
// closed addition, subtraction and multiplication (native operators),
// value-copy (plain assignment) and a zero value (var zero T).
// Any named type whose underlying type is listed here satisfies Number,
// so domain wrappers (type Cents int64, type Volt float64, ...) work too.
//
// Overflow/precision behavior is whatever T's own operators produce
// (wrapping integers, IEEE-754 rounding, complex arithmetic); the matrix
// layer neither detects nor corrects numeric error.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix represents a two-dimensional mutable array of T values.
// Dense[T] is the canonical implementation; kernels accept any Matrix[T]
// and fast-path on *Dense[T].
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
