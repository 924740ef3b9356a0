// SPDX-License-Identifier: MIT

// Package dense - public arithmetic facade.
//
// Purpose:
//   - Declare the error-returning entry points (Add, Multiply) with strict
//     fail-fast validation and the empty-operand conventions.
//   - Provide the operator-sugar methods (Add, Mul) that make *Matrix[T]
//     satisfy Scalar[*Matrix[T]] for block-matrix nesting; these panic on
//     misuse the way an operator would, and are documented as such.
//
// Notes:
//   - Multiplication kernels live in impl_multiply.go; transpose helpers in
//     impl_transpose.go; the tile heuristic in tile.go.
package dense

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd        = "Add"
	opAccumulate = "Accumulate"
	opMultiply   = "Multiply"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Only call with err != nil.
func opErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// Add returns the elementwise sum of a and b as a new matrix.
//
// Empty-operand convention: when one operand is empty (zero elements), a
// clone of the other operand is returned unchanged. This is what makes a
// default-constructed accumulator a usable additive identity in generic
// code (including the multiply kernels when T is itself a matrix).
//
// Implementation:
//   - Stage 1: empty shortcuts (clone the non-empty side).
//   - Stage 2: validateSameShape; allocate result; single flat loop.
//
// Errors:
//   - ErrShapeMismatch (shapes differ and neither operand is empty).
//
// Determinism: flat 0..n-1 loop; operands are never mutated.
// Complexity: O(r*c) time and space.
func Add[T Scalar[T]](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if err := validateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	out := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i].Add(b.data[i])
	}
	return out, nil
}

// Accumulate adds o into m in place (the += operation).
//
// Asymmetric empty convention, kept deliberately distinct from Add:
//   - empty receiver: adopts a copy of o's shape and contents;
//   - empty argument: no-op;
//   - otherwise shapes must match exactly.
//
// The receiver is left unchanged on any error (validate before mutate).
//
// Errors:
//   - ErrNilMatrix     (nil receiver cannot adopt storage),
//   - ErrShapeMismatch (shapes differ and neither side is empty).
//
// Complexity: O(r*c) time; O(r*c) extra space only when adopting.
func (m *Matrix[T]) Accumulate(o *Matrix[T]) error {
	if m == nil {
		return opErrorf(opAccumulate, ErrNilMatrix)
	}
	if o.IsEmpty() {
		return nil
	}
	if m.IsEmpty() {
		m.rows, m.cols = o.rows, o.cols
		m.data = make([]T, len(o.data))
		copy(m.data, o.data)
		return nil
	}
	if err := validateSameShape(m, o); err != nil {
		return opErrorf(opAccumulate, err)
	}
	for i := range m.data {
		m.data[i] = m.data[i].Add(o.data[i])
	}
	return nil
}

// Add is the operator-sugar form of the package-level Add: it returns the
// sum and panics on shape mismatch. Together with Mul and Equal it makes
// *Matrix[T] satisfy Scalar[*Matrix[T]].
func (m *Matrix[T]) Add(o *Matrix[T]) *Matrix[T] {
	out, err := Add(m, o)
	if err != nil {
		panic(err)
	}
	return out
}

// Mul is the operator-sugar product using the BlockIJP algorithm, chosen
// to balance cache friendliness and performance for the common case.
// Panics on incompatible inner dimensions.
func (m *Matrix[T]) Mul(o *Matrix[T]) *Matrix[T] {
	out, err := Multiply(m, o, WithAlgo(BlockIJP))
	if err != nil {
		panic(err)
	}
	return out
}
