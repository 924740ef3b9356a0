// SPDX-License-Identifier: MIT

// Package dense: domain types shared by constructors, kernels and the
// facade. This file intentionally contains ONLY the Scalar constraint and
// the Algo enumeration; errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package dense

// Scalar is the capability set required of a matrix element type.
//
// A type T satisfying Scalar[T] must be default-constructible (its Go zero
// value is the additive identity by convention), copyable by assignment,
// and support addition, multiplication, and equality comparison. This is
// the generic reframing of an operator-based scalar concept: built-in
// operators cannot appear in a Go constraint alongside method sets, so the
// contract is expressed as methods and the package ships thin wrapper
// scalars (see scalars.go) for the built-in numeric types.
//
// *Matrix[T] itself satisfies Scalar[*Matrix[T]]: a matrix may be the
// element type of another matrix, which makes block-matrix multiplication
// compose through the same four kernels.
type Scalar[T any] interface {
	// Add returns the element sum. Must not mutate the receiver.
	Add(T) T
	// Mul returns the element product. Must not mutate the receiver.
	Mul(T) T
	// Equal reports element equality.
	Equal(T) bool
}

// Algo selects one of the dense multiplication algorithms.
//
// The variants trade instruction simplicity against cache locality; all of
// them produce the same result up to floating-point summation order. They
// are exposed so that callers can benchmark or choose the most appropriate
// strategy for their workload.
type Algo uint8

const (
	// Native is the reference triple loop in (row, contraction, column)
	// order. The i→p→j ordering writes sequentially across a row of C and
	// reads sequentially across a row of B for each fixed A element.
	Native Algo = iota

	// Transpose first tile-transposes B, then computes every output cell
	// as a dot product over two contiguous rows. Trades an O(k*n)
	// reorganization pass for fully sequential inner-loop reads.
	Transpose

	// BlockIJP partitions all three dimensions into square tiles and walks
	// each tile in i→j→p order with the contraction loop unrolled 4-wide.
	BlockIJP

	// BlockIPJ uses the same tiling but walks each tile in i→p→j order
	// with the width loop unrolled 4-wide.
	BlockIPJ
)

// algoNames backs Algo.String; order must match the constant block.
var algoNames = [...]string{"native", "transpose", "block_ijp", "block_ipj"}

// String returns the canonical lower-case algorithm name.
func (a Algo) String() string {
	if int(a) >= len(algoNames) {
		return "unknown"
	}
	return algoNames[a]
}

// ParseAlgo maps a canonical name back to its Algo value.
// Returns ErrUnknownAlgo for anything outside the enumeration.
func ParseAlgo(name string) (Algo, error) {
	for i, n := range algoNames {
		if n == name {
			return Algo(i), nil
		}
	}
	return 0, ErrUnknownAlgo
}

// Algos lists every defined algorithm in declaration order.
// Useful for sweeps and agreement tests.
func Algos() []Algo {
	return []Algo{Native, Transpose, BlockIJP, BlockIPJ}
}
