// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep all data well-formed so helpers never mask the condition under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix[T] to forward all methods.
//   - Stage 2: Use hide[T]{X} in tests to force non-*Dense (fallback) paths.
//
// Behavior highlights:
//   - Prevents "*Dense" fast-path via type switch in code under test.
//
// Notes:
//   - Useful to assert fast-path == fallback exactly (Number types compare with ==).
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Implementation:
//   - Stage 1: Call matrix.NewDense[T](r,c).
//   - Stage 2: tb.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests and benchmarks.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func MustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromData BUILDS a *Dense from 2D data or fails the test (fatal on error).
// Complexity: O(r*c).
func MustFromData[T matrix.Number](tb testing.TB, data [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromData(data)
	if err != nil {
		tb.Fatalf("FromData(%v): %v", data, err)
	}

	return m
}

// MustAt READS m(i,j) or fails the test (fatal on error).
// Complexity: O(1).
func MustAt[T matrix.Number](tb testing.TB, m matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test (fatal on error).
// Complexity: O(1).
func MustSet[T matrix.Number](tb testing.TB, m matrix.Matrix[T], i, j int, v T) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustEqual COMPARES two conformable matrices element-wise, fatal on mismatch
// or kernel error. Complexity: O(r*c).
func MustEqual[T matrix.Number](tb testing.TB, want, got matrix.Matrix[T]) {
	tb.Helper()
	eq, err := matrix.Equal(want, got)
	if err != nil {
		tb.Fatalf("Equal: %v", err)
	}
	if !eq {
		tb.Fatalf("matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
	}
}

// fillDenseRand populates a float64 Dense with deterministic pseudo-random
// values from the given seed. Used by benchmarks for reproducible inputs.
// Complexity: O(r*c).
func fillDenseRand(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // deterministic stream per seed
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(tb, m, i, j, rng.Float64())
		}
	}
}
