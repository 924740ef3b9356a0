// SPDX-License-Identifier: MIT

// Package dense - row-major storage, constructors & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula r*cols + c, with the invariant len(data) == rows*cols.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking; Get/Put are the documented unchecked pair for hot paths.
//   - Keep the nil *Matrix a valid empty (0x0) value so that the zero value
//     of a matrix-valued element behaves as the additive identity.
//
// Complexity quicksheet:
//   - New/NewFromSlice/NewFromRows: O(r*c); accessors: O(1); Clone: O(r*c).
package dense

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "NewFromSlice"
	ctxFromRows  = "NewFromRows"
	ctxAt        = "At"
	ctxSet       = "Set"
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// matrixErrorf wraps a sentinel with a uniform constructor/method context.
// Keep tags in constants for grep-ability and consistency.
func matrixErrorf(ctx string, err error) error {
	return fmt.Errorf("dense.%s: %w", ctx, err)
}

// indexErrorf attaches the offending coordinates to an index sentinel.
func indexErrorf(ctx string, r, c int, err error) error {
	return fmt.Errorf("dense.%s(%d,%d): %w", ctx, r, c, err)
}

// Matrix is a row-major dense matrix over the scalar type T.
//   - rows, cols hold the shape (>= 0; zero is the legal empty shape).
//   - data is a flat buffer of length rows*cols (offset = r*cols + c).
//
// The nil *Matrix[T] is a valid, immutable empty matrix: every method
// treats it as the 0x0 shape. Matrices own their storage exclusively;
// operations allocate fresh outputs and never alias operand buffers.
type Matrix[T Scalar[T]] struct {
	rows, cols int
	data       []T
}

// elementCount validates a shape and returns rows*cols.
// Stage 1 (Validate): reject negative dimensions.
// Stage 2 (Overflow): detect rows*cols exceeding int via 64-bit widening.
// Complexity: O(1); pure.
func elementCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidShape
	}
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, ErrCountOverflow
	}
	return int(lo), nil
}

// New creates a rows×cols matrix with default-valued (zero) cells.
//
// Errors:
//   - ErrInvalidShape  (negative dimension),
//   - ErrCountOverflow (rows*cols exceeds int).
func New[T Scalar[T]](rows, cols int) (*Matrix[T], error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, n)}, nil
}

// NewFromSlice creates a rows×cols matrix by copying buf (row-major).
// The slice is copied, never retained: callers keep ownership of buf.
//
// Errors:
//   - ErrInvalidShape / ErrCountOverflow (shape contract),
//   - ErrNilBuffer  (nil buf with non-zero element count),
//   - ErrBadLength  (len(buf) != rows*cols).
func NewFromSlice[T Scalar[T]](rows, cols int, buf []T) (*Matrix[T], error) {
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFromSlice, err)
	}
	if buf == nil && n != 0 {
		return nil, matrixErrorf(ctxFromSlice, ErrNilBuffer)
	}
	if len(buf) != n {
		return nil, matrixErrorf(ctxFromSlice, ErrBadLength)
	}
	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, n)}
	copy(m.data, buf)
	return m, nil
}

// NewFromRows builds a matrix from a row-literal, deriving the shape from
// the input. Every row must have the same length.
//
// Errors:
//   - ErrBadLength (ragged rows).
func NewFromRows[T Scalar[T]](rows [][]T) (*Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return &Matrix[T]{}, nil
	}
	c := len(rows[0])
	m := &Matrix[T]{rows: r, cols: c, data: make([]T, 0, r*c)}
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, ErrBadLength)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// Rows returns the number of rows. Nil-safe. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.rows
}

// Cols returns the number of columns. Nil-safe. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

// Size returns the total number of stored elements. Nil-safe.
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// IsEmpty reports whether the matrix stores no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.Size() == 0 }

// Data returns the backing row-major slice as a mutable view.
// Mutations through the returned slice are visible in the matrix; the
// shape invariant len(Data()) == Rows()*Cols() always holds. Nil-safe.
func (m *Matrix[T]) Data() []T {
	if m == nil {
		return nil
	}
	return m.data
}

// Values returns an independent copy of the backing slice.
func (m *Matrix[T]) Values() []T {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	copy(out, m.data)
	return out
}

// inBounds reports whether (r, c) refers to a stored element.
func (m *Matrix[T]) inBounds(r, c int) bool {
	return m != nil && r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// indexOf converts a row/column pair to a flat index into data.
// Caller must ensure the pair is in bounds.
func (m *Matrix[T]) indexOf(r, c int) int { return r*m.cols + c }

// At retrieves the element at (r, c) with bounds checking.
//
// Errors: ErrOutOfRange when r >= Rows() or c >= Cols() (or negative).
// Complexity: O(1).
func (m *Matrix[T]) At(r, c int) (T, error) {
	if !m.inBounds(r, c) {
		var zero T
		return zero, indexErrorf(ctxAt, r, c, ErrOutOfRange)
	}
	return m.data[m.indexOf(r, c)], nil
}

// Set assigns v at (r, c) with bounds checking.
//
// Errors: ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *Matrix[T]) Set(r, c int, v T) error {
	if !m.inBounds(r, c) {
		return indexErrorf(ctxSet, r, c, ErrOutOfRange)
	}
	m.data[m.indexOf(r, c)] = v
	return nil
}

// Get is the unchecked accessor: bounds checking is the caller's
// responsibility in hot paths. With valid indices it returns the same
// value as At; invalid indices may panic or silently read a neighboring
// cell, exactly as an unchecked flat-offset read would.
func (m *Matrix[T]) Get(r, c int) T { return m.data[r*m.cols+c] }

// Put is the unchecked counterpart of Set. See Get for the contract.
func (m *Matrix[T]) Put(r, c int, v T) { m.data[r*m.cols+c] = v }

// Clone returns a deep copy of the matrix (nil clones to nil).
// The returned matrix is independent of the original. Complexity: O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports shape and elementwise equality via T.Equal.
// Nil and non-nil empty matrices of equal shape compare equal.
// Complexity: O(r*c) worst case; short-circuits on shape mismatch.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.Rows() != o.Rows() || m.Cols() != o.Cols() {
		return false
	}
	for i := range m.Data() {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

// String renders the matrix row by row for diagnostics.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		b.WriteString(fmtRowOpen)
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteString(fmtSep)
			}
			fmt.Fprintf(&b, "%v", m.data[m.indexOf(r, c)])
		}
		b.WriteString(fmtRowClose)
	}
	return b.String()
}
