// Package lvlmat is your in-memory toolkit for building and combining
// dense matrices over any Go numeric type — integers, floats or complex.
//
// 🚀 What is lvlmat?
//
//	A small, type-safe, zero-dependency library that brings together:
//		• Generic Dense[T] storage: row-major, flat-slice, cache-friendly
//		• Constructors: from 2D data, constants, defaults & diagonals
//		• Kernels: Add, Sub, Mul, Transpose, Scale, Hadamard, MatVec
//		• Strict fail-fast validation with sentinel errors (errors.Is-friendly)
//
// ✨ Why choose lvlmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – no panics on user input, pure operations
//   - Pure Go – no cgo, no hidden deps, generics all the way down
//   - Deterministic – fixed loop orders, reproducible results
//
// Everything lives in a single subpackage:
//
//	matrix/ — generic Dense matrices, constructors, validators & kernels
//
// Quick ASCII example:
//
//	    ⎡1 2⎤   ⎡5 6⎤   ⎡19 22⎤
//	    ⎣3 4⎦ × ⎣7 8⎦ = ⎣43 50⎦
//
// Next up: determinant & inversion, elementwise views, and parallel kernels.
// Dive into the matrix package docs for full examples and usage patterns.
//
//	go get github.com/katalvlaran/lvlmat/matrix
package lvlmat
