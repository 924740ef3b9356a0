// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"runtime"
	"strings"
	"sync"

	"github.com/ninjaro/matrix-centipede/dense"
)

// Handle is an opaque reference to a registered matrix.
// The zero Handle is never issued and always resolves to nothing.
type Handle uint64

// Invalid is the null handle.
const Invalid Handle = 0

// matrixF64 is the double-precision matrix exchanged over the boundary.
type matrixF64 = dense.Matrix[dense.Float64]

// Table is a mutex-guarded handle registry. All methods are safe for
// concurrent use; the matrices behind distinct handles are independent,
// but concurrent mutation of one matrix remains the caller's concern.
type Table struct {
	mu   sync.Mutex
	next Handle
	mats map[Handle]*matrixF64
}

// NewTable creates an empty registry.
func NewTable() *Table {
	return &Table{mats: make(map[Handle]*matrixF64)}
}

// DefaultTable serves the package-level free functions.
var DefaultTable = NewTable()

// insert registers m and returns its fresh handle.
func (t *Table) insert(m *matrixF64) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.mats[t.next] = m
	return t.next
}

// lookup resolves h, returning nil for the null or an unknown handle.
func (t *Table) lookup(h Handle) *matrixF64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mats[h]
}

// classify converts a recovered panic value into a boundary status.
// Allocation exhaustion surfaces as a runtime error from makeslice.
func classify(rec any) Status {
	if err, ok := rec.(runtime.Error); ok {
		msg := err.Error()
		if strings.Contains(msg, "makeslice") || strings.Contains(msg, "out of memory") {
			return AllocFailure
		}
	}
	return Internal
}

// statusOf maps a dense error onto the closed status vocabulary.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, dense.ErrShapeMismatch),
		errors.Is(err, dense.ErrCountOverflow),
		errors.Is(err, dense.ErrInvalidShape),
		errors.Is(err, dense.ErrBadLength):
		return BadSize
	case errors.Is(err, dense.ErrNilBuffer), errors.Is(err, dense.ErrNilMatrix):
		return NullHandle
	default:
		return Internal
	}
}

// NewEmpty registers a 0x0 matrix and returns its handle.
func (t *Table) NewEmpty() Handle {
	return t.insert(&matrixF64{})
}

// New registers a rows×cols zero matrix. Returns Invalid when the shape
// is rejected (negative dimension, count overflow) or storage cannot be
// allocated; the boundary reports no reason, matching a null pointer
// result.
func (t *Table) New(rows, cols int) (h Handle) {
	defer func() {
		if rec := recover(); rec != nil {
			h = Invalid
		}
	}()
	m, err := dense.New[dense.Float64](rows, cols)
	if err != nil {
		return Invalid
	}
	return t.insert(m)
}

// Delete releases the handle. Unknown and null handles are ignored.
func (t *Table) Delete(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.mats, h)
}

// Rows returns the row count behind h, or zero for a null handle.
func (t *Table) Rows(h Handle) int { return t.lookup(h).Rows() }

// Cols returns the column count behind h, or zero for a null handle.
func (t *Table) Cols(h Handle) int { return t.lookup(h).Cols() }

// Size returns the element count behind h, or zero for a null handle.
func (t *Table) Size(h Handle) int { return t.lookup(h).Size() }

// Write copies len(src) values into the matrix behind h.
// The element count must match the matrix size exactly.
//
// Statuses: NullHandle (unknown handle, or nil src with non-zero size),
// BadSize (count mismatch), OK otherwise.
func (t *Table) Write(h Handle, src []float64) (s Status) {
	defer func() {
		if rec := recover(); rec != nil {
			s = classify(rec)
		}
	}()
	m := t.lookup(h)
	if m == nil {
		return NullHandle
	}
	if src == nil && m.Size() != 0 {
		return NullHandle
	}
	if len(src) != m.Size() {
		return BadSize
	}
	data := m.Data()
	for i, v := range src {
		data[i] = dense.Float64(v)
	}
	return OK
}

// Read copies the matrix behind h into dst.
// The destination capacity must match the matrix size exactly; on any
// failure dst is left untouched.
//
// Statuses: NullHandle (unknown handle, or nil dst with non-zero size),
// BadSize (count mismatch), OK otherwise.
func (t *Table) Read(h Handle, dst []float64) (s Status) {
	defer func() {
		if rec := recover(); rec != nil {
			s = classify(rec)
		}
	}()
	m := t.lookup(h)
	if m == nil {
		return NullHandle
	}
	if dst == nil && m.Size() != 0 {
		return NullHandle
	}
	if len(dst) != m.Size() {
		return BadSize
	}
	for i, v := range m.Data() {
		dst[i] = float64(v)
	}
	return OK
}

// Mul multiplies the matrices behind lhs and rhs into a fresh handle.
//
// Statuses: NullHandle (either operand unknown), BadSize (inner
// dimension mismatch or overflowing result shape), AllocFailure,
// Internal. The returned handle is Invalid unless the status is OK.
func (t *Table) Mul(lhs, rhs Handle) (h Handle, s Status) {
	defer func() {
		if rec := recover(); rec != nil {
			h, s = Invalid, classify(rec)
		}
	}()
	a, b := t.lookup(lhs), t.lookup(rhs)
	if a == nil || b == nil {
		return Invalid, NullHandle
	}
	if a.Cols() != b.Rows() {
		return Invalid, BadSize
	}
	c, err := dense.Multiply(a, b)
	if err != nil {
		return Invalid, statusOf(err)
	}
	return t.insert(c), OK
}

// ---------- package-level free functions over DefaultTable ----------

// NewEmpty registers an empty matrix in the default table.
func NewEmpty() Handle { return DefaultTable.NewEmpty() }

// New registers a rows×cols zero matrix in the default table.
func New(rows, cols int) Handle { return DefaultTable.New(rows, cols) }

// Delete releases a default-table handle.
func Delete(h Handle) { DefaultTable.Delete(h) }

// Rows queries a default-table handle.
func Rows(h Handle) int { return DefaultTable.Rows(h) }

// Cols queries a default-table handle.
func Cols(h Handle) int { return DefaultTable.Cols(h) }

// Size queries a default-table handle.
func Size(h Handle) int { return DefaultTable.Size(h) }

// Write bulk-writes into a default-table handle.
func Write(h Handle, src []float64) Status { return DefaultTable.Write(h, src) }

// Read bulk-reads from a default-table handle.
func Read(h Handle, dst []float64) Status { return DefaultTable.Read(h, dst) }

// Mul multiplies two default-table handles into a new handle.
func Mul(lhs, rhs Handle) (Handle, Status) { return DefaultTable.Mul(lhs, rhs) }
