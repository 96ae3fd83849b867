// Package matrix offers generic dense matrices and their basic algebra.
//
// The matrix package provides:
//
//   - Dense[T], an owning row-major matrix over any built-in numeric type
//     (integers, floats, complex — see the Number constraint).
//   - Constructors from explicit 2D data, constants, zero values and
//     diagonal patterns (FromData, FromConstant, DiagonalFromConstant, ...).
//   - Kernels for element-wise addition/subtraction, matrix multiplication,
//     transposition, scaling, Hadamard products and matrix-vector products.
//
// All operations validate fail-fast and surface sentinel errors matched via
// errors.Is; none of them mutates its operands — every kernel returns a
// freshly allocated result.
//
// See the examples in this package for usage patterns.
package matrix
