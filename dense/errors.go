// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for the documented operator-sugar
// methods (Add/Mul as Scalar elements) and for programmer errors in options.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (negative rows or columns). Zero dimensions are legal: the empty
	// matrix is a first-class value.
	ErrInvalidShape = errors.New("dense: invalid shape")

	// ErrCountOverflow is returned when rows*cols does not fit in an int.
	// Construction must fail before any allocation is attempted.
	ErrCountOverflow = errors.New("dense: element count overflows")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. The checked accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible dimensions between operands:
	// Add with differing shapes, or Multiply where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("dense: shape mismatch")

	// ErrNilBuffer is returned by NewFromSlice when the source slice is nil
	// while a non-zero element count was requested.
	ErrNilBuffer = errors.New("dense: nil buffer")

	// ErrBadLength is returned when a supplied buffer or row literal does
	// not contain exactly rows*cols elements.
	ErrBadLength = errors.New("dense: buffer length does not match shape")

	// ErrNilMatrix indicates that a nil receiver was used where an
	// addressable matrix is required (Accumulate).
	ErrNilMatrix = errors.New("dense: nil receiver")

	// ErrUnknownAlgo is returned by Multiply for an Algo value outside the
	// defined enumeration, regardless of tile size.
	ErrUnknownAlgo = errors.New("dense: unknown multiplication algorithm")
)
