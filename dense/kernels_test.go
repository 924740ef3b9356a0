// SPDX-License-Identifier: MIT
package dense_test

import (
	"math/rand"
	"testing"

	"github.com/ninjaro/matrix-centipede/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKernels_Direct drives each private kernel through the test bridge
// against a preallocated zero output, bypassing the Multiply facade.
func TestKernels_Direct(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := randInts(t, rng, 6, 7)
	b := randInts(t, rng, 7, 5)

	want, err := dense.Multiply(a, b)
	require.NoError(t, err)

	run := func(name string, kernel func(out *dense.Matrix[dense.Int])) {
		t.Run(name, func(t *testing.T) {
			out := mustNew[dense.Int](t, 6, 5)
			kernel(out)
			assert.True(t, out.Equal(want))
		})
	}

	run("Native", func(out *dense.Matrix[dense.Int]) { dense.MulNativeInto(a, b, out) })
	run("Transpose", func(out *dense.Matrix[dense.Int]) { dense.MulTransposeInto(a, b, out, 4) })
	run("BlockIJP", func(out *dense.Matrix[dense.Int]) { dense.MulBlockIJPInto(a, b, out, 4) })
	run("BlockIPJ", func(out *dense.Matrix[dense.Int]) { dense.MulBlockIPJInto(a, b, out, 4) })
}
