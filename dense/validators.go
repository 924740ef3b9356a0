// SPDX-License-Identifier: MIT
// Package dense: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for shape compatibility checks.
//   - Keep kernels/facades minimal by delegating guards here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package dense

// validateSameShape ensures a and b have equal dimensions.
// Nil operands count as 0x0. Returns ErrShapeMismatch otherwise.
func validateSameShape[T Scalar[T]](a, b *Matrix[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrShapeMismatch
	}
	return nil
}

// validateMulCompatible ensures the inner dimensions agree (a.Cols == b.Rows).
// Nil operands count as 0x0. Returns ErrShapeMismatch otherwise.
func validateMulCompatible[T Scalar[T]](a, b *Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return ErrShapeMismatch
	}
	return nil
}

// validateAlgo ensures the algorithm value is inside the enumeration.
// Returns ErrUnknownAlgo otherwise; checked before any work or allocation.
func validateAlgo(a Algo) error {
	if int(a) >= len(algoNames) {
		return ErrUnknownAlgo
	}
	return nil
}
