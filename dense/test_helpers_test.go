// SPDX-License-Identifier: MIT
// Package dense_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Keep fixtures deterministic: fixed seeds, fixed shapes, small integer
//     values so floating-point arithmetic stays exact where tests rely on it.

package dense_test

import (
	"math/rand"
	"testing"

	"github.com/ninjaro/matrix-centipede/dense"
	"github.com/stretchr/testify/require"
)

// mulShapes is the (m, k, n) triple set used by agreement tests: tiny,
// ragged, square, and larger-than-tile shapes are all represented.
var mulShapes = [][3]int{
	{1, 1, 1},
	{2, 3, 2},
	{5, 4, 3},
	{8, 8, 8},
	{17, 13, 9},
	{33, 41, 20},
}

// testTiles covers the heuristic (0), degenerate (1) and small explicit
// block edges.
var testTiles = []int{0, 1, 3, 8}

// mustNew allocates a rows×cols matrix or aborts the test.
func mustNew[T dense.Scalar[T]](t testing.TB, rows, cols int) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.New[T](rows, cols)
	require.NoError(t, err)
	return m
}

// mustFromSlice builds a matrix from a flat row-major slice or aborts.
func mustFromSlice[T dense.Scalar[T]](t testing.TB, rows, cols int, buf []T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewFromSlice(rows, cols, buf)
	require.NoError(t, err)
	return m
}

// randInts fills a fresh rows×cols Int matrix with values in [-10, 10].
func randInts(t testing.TB, rng *rand.Rand, rows, cols int) *dense.Matrix[dense.Int] {
	t.Helper()
	m := mustNew[dense.Int](t, rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = dense.Int(rng.Intn(21) - 10)
	}
	return m
}

// randFloats fills a fresh rows×cols Float64 matrix with small integer
// values, keeping every product and sum exactly representable.
func randFloats(t testing.TB, rng *rand.Rand, rows, cols int) *dense.Matrix[dense.Float64] {
	t.Helper()
	m := mustNew[dense.Float64](t, rows, cols)
	data := m.Data()
	for i := range data {
		data[i] = dense.Float64(rng.Intn(201) - 100)
	}
	return m
}

// identityFloats builds the n×n identity matrix.
func identityFloats(t testing.TB, n int) *dense.Matrix[dense.Float64] {
	t.Helper()
	m := mustNew[dense.Float64](t, n, n)
	for i := 0; i < n; i++ {
		m.Put(i, i, 1)
	}
	return m
}
