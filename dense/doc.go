// SPDX-License-Identifier: MIT

// Package dense provides a generic, row-major dense matrix with a
// cache-aware multiplication engine.
//
// The dense package provides:
//
//   - Matrix[T], a contiguously stored row-major matrix parameterized over
//     any scalar satisfying the Scalar constraint (Add, Mul, Equal).
//   - Four interchangeable multiplication algorithms (Native, Transpose,
//     BlockIJP, BlockIPJ) sharing one tile-size heuristic and one
//     transpose helper, selected via functional options on Multiply.
//   - Ready-made wrapper scalars (Int, Int32, Int64, Float32, Float64,
//     Float16, Complex128) for numeric work.
//
// A *Matrix[T] itself satisfies Scalar[*Matrix[T]], so matrices of
// matrices multiply correctly: the engine doubles as a block-matrix
// (matrix-of-matrices) container, with the nil pointer acting as the
// default-constructed empty element.
//
// All operations are synchronous and allocate fresh output storage; the
// package performs no internal locking. See the examples in this package
// for usage patterns.
package dense
