// SPDX-License-Identifier: MIT

// Package api exposes the dense matrix engine behind opaque integer
// handles and a small closed status vocabulary, mirroring a plain-C ABI
// surface for embedding and cross-language consumption.
//
// Properties of every entry point:
//
//   - Null-safe: an invalid or stale handle yields zero-valued queries or
//     NullHandle, never a fault.
//   - Panic-proof: internal failures are caught and converted to a status
//     code; nothing unwinds across the boundary.
//   - Double-precision: handles reference Matrix[Float64] values, the
//     scalar type a C caller exchanges flat float64 buffers with.
//
// A package-level default Table serves the C-ABI-like free functions
// (New, Delete, Write, Read, Mul, ...); embedders that need isolated
// lifetimes can allocate their own Table.
package api
