// SPDX-License-Identifier: MIT
package api_test

import (
	"math"
	"testing"

	"github.com/ninjaro/matrix-centipede/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Lifecycle(t *testing.T) {
	tbl := api.NewTable()

	h := tbl.New(2, 3)
	require.NotEqual(t, api.Invalid, h)
	assert.Equal(t, 2, tbl.Rows(h))
	assert.Equal(t, 3, tbl.Cols(h))
	assert.Equal(t, 6, tbl.Size(h))

	tbl.Delete(h)
	assert.Zero(t, tbl.Rows(h), "deleted handle reads as empty")

	// Delete is idempotent and tolerates the null handle.
	tbl.Delete(h)
	tbl.Delete(api.Invalid)
}

func TestTable_NewEmpty(t *testing.T) {
	tbl := api.NewTable()
	h := tbl.NewEmpty()
	require.NotEqual(t, api.Invalid, h)
	assert.Zero(t, tbl.Rows(h))
	assert.Zero(t, tbl.Cols(h))
	assert.Zero(t, tbl.Size(h))

	// Empty round-trip: zero-length transfers succeed.
	assert.Equal(t, api.OK, tbl.Write(h, []float64{}))
	assert.Equal(t, api.OK, tbl.Read(h, []float64{}))
}

func TestTable_NewRejectsBadShapes(t *testing.T) {
	tbl := api.NewTable()
	assert.Equal(t, api.Invalid, tbl.New(-1, 4))
	assert.Equal(t, api.Invalid, tbl.New(4, -1))
	assert.Equal(t, api.Invalid, tbl.New(math.MaxInt, math.MaxInt))
}

func TestTable_WriteRead(t *testing.T) {
	tbl := api.NewTable()
	h := tbl.New(2, 2)
	require.NotEqual(t, api.Invalid, h)

	src := []float64{1, 2, 3, 4}
	require.Equal(t, api.OK, tbl.Write(h, src))

	dst := make([]float64, 4)
	require.Equal(t, api.OK, tbl.Read(h, dst))
	assert.Equal(t, src, dst)

	t.Run("CountMismatch", func(t *testing.T) {
		assert.Equal(t, api.BadSize, tbl.Write(h, []float64{1, 2}))
		assert.Equal(t, api.BadSize, tbl.Read(h, make([]float64, 5)))
	})
	t.Run("NilBuffers", func(t *testing.T) {
		assert.Equal(t, api.NullHandle, tbl.Write(h, nil))
		assert.Equal(t, api.NullHandle, tbl.Read(h, nil))
	})
	t.Run("UnknownHandle", func(t *testing.T) {
		assert.Equal(t, api.NullHandle, tbl.Write(api.Handle(999), src))
		assert.Equal(t, api.NullHandle, tbl.Read(api.Invalid, dst))
	})
}

func TestTable_Mul(t *testing.T) {
	tbl := api.NewTable()

	a := tbl.New(2, 3)
	b := tbl.New(3, 2)
	require.Equal(t, api.OK, tbl.Write(a, []float64{1, 2, 3, 4, 5, 6}))
	require.Equal(t, api.OK, tbl.Write(b, []float64{7, 8, 9, 10, 11, 12}))

	t.Run("Product", func(t *testing.T) {
		c, s := tbl.Mul(a, b)
		require.Equal(t, api.OK, s)
		require.NotEqual(t, api.Invalid, c)
		assert.Equal(t, 2, tbl.Rows(c))
		assert.Equal(t, 2, tbl.Cols(c))

		out := make([]float64, 4)
		require.Equal(t, api.OK, tbl.Read(c, out))
		assert.Equal(t, []float64{58, 64, 139, 154}, out)
	})
	t.Run("InnerMismatch", func(t *testing.T) {
		c, s := tbl.Mul(a, a) // (2×3)·(2×3)
		assert.Equal(t, api.BadSize, s)
		assert.Equal(t, api.Invalid, c)
	})
	t.Run("NullOperands", func(t *testing.T) {
		c, s := tbl.Mul(api.Invalid, b)
		assert.Equal(t, api.NullHandle, s)
		assert.Equal(t, api.Invalid, c)

		c, s = tbl.Mul(a, api.Handle(12345))
		assert.Equal(t, api.NullHandle, s)
		assert.Equal(t, api.Invalid, c)
	})
	t.Run("EmptyOperands", func(t *testing.T) {
		// (0×0)·(0×0) is a legal empty product.
		e1, e2 := tbl.NewEmpty(), tbl.NewEmpty()
		c, s := tbl.Mul(e1, e2)
		require.Equal(t, api.OK, s)
		assert.Zero(t, tbl.Size(c))
	})
}

func TestDefaultTable_FreeFunctions(t *testing.T) {
	h := api.New(1, 2)
	require.NotEqual(t, api.Invalid, h)
	defer api.Delete(h)

	require.Equal(t, api.OK, api.Write(h, []float64{3, 4}))
	assert.Equal(t, 1, api.Rows(h))
	assert.Equal(t, 2, api.Cols(h))
	assert.Equal(t, 2, api.Size(h))

	g := api.NewEmpty()
	defer api.Delete(g)
	assert.Zero(t, api.Size(g))

	// (1×2)·(0×0) has mismatched inner dimensions.
	_, s := api.Mul(h, g)
	assert.Equal(t, api.BadSize, s)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", api.OK.String())
	assert.Equal(t, "null-handle", api.NullHandle.String())
	assert.Equal(t, "bad-size", api.BadSize.String())
	assert.Equal(t, "allocation-failure", api.AllocFailure.String())
	assert.Equal(t, "internal-error", api.Internal.String())
}
