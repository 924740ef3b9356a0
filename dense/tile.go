// SPDX-License-Identifier: MIT

// Package dense: tile-size heuristic shared by the tiled kernels.
//
// The heuristic is deterministic and pure - it depends only on the scalar
// size and the problem dimensions, never on runtime cache probing.
package dense

import (
	"math"
	"unsafe"
)

const (
	// l1CacheBytes is the assumed per-core L1 data cache capacity.
	l1CacheBytes = 32 * 1024

	// tileWorkingSets is the number of tiles resident per block step:
	// one each of A, B and C.
	tileWorkingSets = 3

	// maxTile caps the block edge regardless of cache arithmetic.
	maxTile = 256

	// wordBytes is the scalar size that selects the narrow vector width
	// (8-byte floating point lanes).
	wordBytes = 8

	// vecWidthWord / vecWidthDefault are the vectorization widths the tile
	// edge is rounded down to: 8 lanes for 8-byte scalars, 16 otherwise.
	vecWidthWord    = 8
	vecWidthDefault = 16

	// unroll is the manual unroll factor of the blocked kernels' innermost
	// loops.
	unroll = 4
)

// optimalTile computes a cache-aware square block edge for the scalar T,
// optionally clamped to the problem dimensions.
//
// Implementation:
//   - Stage 1: edge = floor(sqrt(L1 / (3 * sizeof(T)))).
//   - Stage 2: round down to the vectorization width (8 for 8-byte
//     scalars, 16 otherwise); cap at maxTile.
//   - Stage 3: clamp to each provided non-zero dimension (m, n, k).
//   - Stage 4: fall back to the vectorization width if the result is zero.
//
// Pass 0 for a dimension to leave it unconstrained.
func optimalTile[T Scalar[T]](m, n, k int) int {
	elem := int(unsafe.Sizeof(*new(T)))
	width := vecWidthDefault
	if elem == wordBytes {
		width = vecWidthWord
	}
	if elem <= 0 {
		return width
	}
	tile := int(math.Sqrt(float64(l1CacheBytes) / float64(tileWorkingSets*elem)))
	tile -= tile % width
	if tile > maxTile {
		tile = maxTile
	}
	for _, dim := range [...]int{m, n, k} {
		if dim > 0 && tile > dim {
			tile = dim
		}
	}
	if tile <= 0 {
		tile = width
	}
	return tile
}
