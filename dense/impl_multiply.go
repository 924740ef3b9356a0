// SPDX-License-Identifier: MIT

// Package dense - the multiplication kernel family.
//
// Purpose:
//   - Declare the Multiply facade (validation, allocation, dispatch) and
//     the four kernels it selects between.
//   - Keep loop orders fixed and documented; determinism matters more here
//     than in any other file.
//
// Kernel map:
//   - mulNative    : i→p→j triple loop, no blocking.
//   - mulTranspose : tiled transpose of B, then contiguous dot products.
//   - mulBlockIJP  : square tiles, intra-tile i→j→p, contraction unrolled 4x.
//   - mulBlockIPJ  : square tiles, intra-tile i→p→j, width unrolled 4x.
//
// All four accumulate through T.Add/T.Mul only, so they compose for any
// Scalar - including *Matrix elements, where the zero-valued accumulator
// is the nil (empty) matrix and Add's empty-identity convention applies.
//
// Floating-point note: the variants differ in summation order, so float
// results may differ across algorithms within rounding; integer scalars
// agree bit-exactly.
//
// AI-Hints:
//   - Prefer BlockIJP for large square problems; Native wins for tiny
//     shapes where tiling overhead dominates.
//   - Tile 0 resolves the heuristic once per call; pass an explicit tile
//     when sweeping block sizes in benchmarks.
package dense

// Multiply computes the standard matrix product C = A × B.
//
// The result shape is a.Rows × b.Cols and requires a.Cols == b.Rows.
// Options select the algorithm (default Native) and the tile size
// (default 0 = heuristic; ignored by Native).
//
// Implementation:
//   - Stage 1: validate algorithm, then inner dimensions; both before any
//     allocation or work.
//   - Stage 2: allocate the zero-valued result (propagates the overflow
//     condition for a too-large result shape).
//   - Stage 3: zero-dimension shortcut (m, n or k == 0) returns the empty
//     shaped result without entering any loop body.
//   - Stage 4: resolve tile and dispatch to the selected kernel.
//
// Errors:
//   - ErrUnknownAlgo   (algorithm outside the enumeration, any tile),
//   - ErrShapeMismatch (inner dimension mismatch, any algorithm and tile),
//   - ErrCountOverflow (result element count exceeds int).
//
// Complexity: O(m*n*k) time, O(m*n) space (plus O(k*n) for Transpose).
func Multiply[T Scalar[T]](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	cfg := gatherOptions(opts...)
	if err := validateAlgo(cfg.algo); err != nil {
		return nil, opErrorf(opMultiply, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMultiply, err)
	}
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	out, err := New[T](m, n)
	if err != nil {
		return nil, opErrorf(opMultiply, err)
	}
	if m == 0 || n == 0 || k == 0 {
		return out, nil
	}
	tile := cfg.tile
	if tile == 0 {
		tile = optimalTile[T](m, n, k)
	}
	switch cfg.algo {
	case Native:
		mulNative(a, b, out)
	case Transpose:
		mulTranspose(a, b, out, tile)
	case BlockIJP:
		mulBlockIJP(a, b, out, tile)
	case BlockIPJ:
		mulBlockIPJ(a, b, out, tile)
	}
	return out, nil
}

// mulNative is the reference triple loop in i→p→j order.
//
// The contraction index sits in the middle: for each fixed A element the
// inner loop writes sequentially across a row of C and reads sequentially
// across a row of B, maximizing spatial locality without any blocking.
func mulNative[T Scalar[T]](a, b, out *Matrix[T]) {
	m, k, n := a.rows, a.cols, b.cols
	for i := 0; i < m; i++ {
		ai, ci := i*k, i*n
		for p := 0; p < k; p++ {
			aip := a.data[ai+p]
			bp := p * n
			for j := 0; j < n; j++ {
				out.data[ci+j] = out.data[ci+j].Add(aip.Mul(b.data[bp+j]))
			}
		}
	}
}

// mulTranspose materializes Bᵀ (tile-transposed), then computes every
// output cell as a dot product over two contiguous rows - one from A, one
// from Bᵀ. The O(k*n) reorganization buys fully sequential reads on the
// inner loop.
func mulTranspose[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	bt := b.TransposeTile(tile)
	m, k, n := a.rows, a.cols, b.cols
	for i := 0; i < m; i++ {
		ai, ci := i*k, i*n
		for j := 0; j < n; j++ {
			bj := j * k
			var sum T
			for p := 0; p < k; p++ {
				sum = sum.Add(a.data[ai+p].Mul(bt.data[bj+p]))
			}
			out.data[ci+j] = sum
		}
	}
}

// mulBlockIJP partitions i, j and p into square tiles and walks each tile
// in row-major i→j→p order. The contraction loop is unrolled 4-wide into
// independent accumulators for instruction-level parallelism; partial
// tiles at the boundary are handled by clamped loop bounds alone.
func mulBlockIJP[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	m, k, n := a.rows, a.cols, b.cols
	for ii := 0; ii < m; ii += tile {
		iMax := min(ii+tile, m)
		for jj := 0; jj < n; jj += tile {
			jMax := min(jj+tile, n)
			for pp := 0; pp < k; pp += tile {
				pMax := min(pp+tile, k)
				for i := ii; i < iMax; i++ {
					ai, ci := i*k, i*n
					for j := jj; j < jMax; j++ {
						var s0, s1, s2, s3 T
						p := pp
						for ; p+unroll <= pMax; p += unroll {
							s0 = s0.Add(a.data[ai+p].Mul(b.data[p*n+j]))
							s1 = s1.Add(a.data[ai+p+1].Mul(b.data[(p+1)*n+j]))
							s2 = s2.Add(a.data[ai+p+2].Mul(b.data[(p+2)*n+j]))
							s3 = s3.Add(a.data[ai+p+3].Mul(b.data[(p+3)*n+j]))
						}
						for ; p < pMax; p++ {
							s0 = s0.Add(a.data[ai+p].Mul(b.data[p*n+j]))
						}
						out.data[ci+j] = out.data[ci+j].Add(s0).Add(s1).Add(s2).Add(s3)
					}
				}
			}
		}
	}
}

// mulBlockIPJ uses the same tiling but walks each tile row in i→p→j
// order, unrolling the width dimension 4-wide. Compared to BlockIJP this
// keeps B reads sequential inside the tile at the cost of re-touching the
// C row once per contraction step.
func mulBlockIPJ[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	m, k, n := a.rows, a.cols, b.cols
	for ii := 0; ii < m; ii += tile {
		iMax := min(ii+tile, m)
		for pp := 0; pp < k; pp += tile {
			pMax := min(pp+tile, k)
			for jj := 0; jj < n; jj += tile {
				jMax := min(jj+tile, n)
				for i := ii; i < iMax; i++ {
					ai, ci := i*k, i*n
					for p := pp; p < pMax; p++ {
						aip := a.data[ai+p]
						bp := p * n
						j := jj
						for ; j+unroll <= jMax; j += unroll {
							out.data[ci+j] = out.data[ci+j].Add(aip.Mul(b.data[bp+j]))
							out.data[ci+j+1] = out.data[ci+j+1].Add(aip.Mul(b.data[bp+j+1]))
							out.data[ci+j+2] = out.data[ci+j+2].Add(aip.Mul(b.data[bp+j+2]))
							out.data[ci+j+3] = out.data[ci+j+3].Add(aip.Mul(b.data[bp+j+3]))
						}
						for ; j < jMax; j++ {
							out.data[ci+j] = out.data[ci+j].Add(aip.Mul(b.data[bp+j]))
						}
					}
				}
			}
		}
	}
}
