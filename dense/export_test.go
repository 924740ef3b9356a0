// SPDX-License-Identifier: MIT

package dense

// Test bridge (white-box) for private kernels and the tile heuristic.
// Compiled only with the package's tests; invisible in production builds.
// Keep ALL test-only bridges co-located here so a private signature change
// is mirrored once, not across many tests.

// OptimalTileFor exposes the tile heuristic for white-box tests.
func OptimalTileFor[T Scalar[T]](m, n, k int) int { return optimalTile[T](m, n, k) }

// ElementCountOf exposes shape validation for white-box tests.
var ElementCountOf = elementCount

// Kernel bridges: run a private kernel against a preallocated output.
func MulNativeInto[T Scalar[T]](a, b, out *Matrix[T]) { mulNative(a, b, out) }
func MulTransposeInto[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	mulTranspose(a, b, out, tile)
}
func MulBlockIJPInto[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	mulBlockIJP(a, b, out, tile)
}
func MulBlockIPJInto[T Scalar[T]](a, b, out *Matrix[T], tile int) {
	mulBlockIPJ(a, b, out, tile)
}
