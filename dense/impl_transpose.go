// SPDX-License-Identifier: MIT

// Package dense - transpose helpers.
//
// Two variants are provided:
//   - Transpose: single pass, writes sequentially while reading with a
//     stride of cols. Simple and adequate for small matrices.
//   - TransposeTile: processes the matrix in square blocks so both the
//     source row-walk and the destination column-walk stay within cache
//     during the reorganization. Used by the Transpose multiply algorithm.
//
// Both return a freshly allocated matrix and never mutate the receiver.
package dense

// Transpose returns a new cols×rows matrix with rows and columns swapped.
//
// Determinism: fixed j→i traversal (sequential write, strided read).
// Complexity: O(r*c) time and space. Nil-safe (empty in, empty out).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	out := &Matrix[T]{rows: cols, cols: rows, data: make([]T, rows*cols)}
	for j := 0; j < cols; j++ {
		base := j * rows
		for i := 0; i < rows; i++ {
			out.data[base+i] = m.data[i*cols+j]
		}
	}
	return out
}

// TransposeTile returns the transpose computed in square tiles.
// tile == 0 requests the heuristic edge (unclamped by problem dimensions,
// since the reorganization touches only one matrix pair).
//
// Degenerate case: a single-row or single-column matrix transposes to the
// same flat buffer, so the reorganization collapses to a straight copy.
//
// Complexity: O(r*c) time and space. Nil-safe.
func (m *Matrix[T]) TransposeTile(tile int) *Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	out := &Matrix[T]{rows: cols, cols: rows, data: make([]T, rows*cols)}
	if rows == 1 || cols == 1 {
		copy(out.data, m.Data())
		return out
	}
	if tile <= 0 {
		tile = optimalTile[T](0, 0, 0)
	}
	for ii := 0; ii < rows; ii += tile {
		iMax := min(ii+tile, rows)
		for jj := 0; jj < cols; jj += tile {
			jMax := min(jj+tile, cols)
			for i := ii; i < iMax; i++ {
				base := i * cols
				for j := jj; j < jMax; j++ {
					out.data[j*rows+i] = m.data[base+j]
				}
			}
		}
	}
	return out
}
