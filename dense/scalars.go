// SPDX-License-Identifier: MIT

// Package dense: wrapper scalars for the built-in numeric types.
//
// Go constraints cannot mix operator-bearing type unions with method sets,
// so the numeric types get thin named wrappers that satisfy Scalar by
// delegating to the built-in operators. The wrappers compile to the same
// machine arithmetic; only the spelling changes.
package dense

import (
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Int is the Scalar wrapper over int.
type Int int

func (x Int) Add(y Int) Int    { return x + y }
func (x Int) Mul(y Int) Int    { return x * y }
func (x Int) Equal(y Int) bool { return x == y }

// Int32 is the Scalar wrapper over int32.
type Int32 int32

func (x Int32) Add(y Int32) Int32  { return x + y }
func (x Int32) Mul(y Int32) Int32  { return x * y }
func (x Int32) Equal(y Int32) bool { return x == y }

// Int64 is the Scalar wrapper over int64.
type Int64 int64

func (x Int64) Add(y Int64) Int64  { return x + y }
func (x Int64) Mul(y Int64) Int64  { return x * y }
func (x Int64) Equal(y Int64) bool { return x == y }

// Float32 is the Scalar wrapper over float32.
type Float32 float32

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Equal(y Float32) bool  { return x == y }

// Float64 is the Scalar wrapper over float64.
type Float64 float64

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Equal(y Float64) bool  { return x == y }

// Complex128 is the Scalar wrapper over complex128.
type Complex128 complex128

func (x Complex128) Add(y Complex128) Complex128 { return x + y }
func (x Complex128) Mul(y Complex128) Complex128 { return x * y }
func (x Complex128) Equal(y Complex128) bool     { return x == y }

// Float16 is a half-precision Scalar backed by the IEEE 754 binary16
// representation from github.com/x448/float16. Arithmetic widens to
// float32 and narrows back, matching the usual f16 compute convention.
// Its 2-byte footprint exercises the wide-vector branch of the tile
// heuristic.
type Float16 float16.Float16

// F16 converts a float32 into the half-precision scalar.
func F16(f float32) Float16 { return Float16(float16.Fromfloat32(f)) }

// Float32 widens the half-precision value back to float32.
func (x Float16) Float32() float32 { return float16.Float16(x).Float32() }

func (x Float16) Add(y Float16) Float16 {
	return F16(x.Float32() + y.Float32())
}

func (x Float16) Mul(y Float16) Float16 {
	return F16(x.Float32() * y.Float32())
}

func (x Float16) Equal(y Float16) bool {
	return x.Float32() == y.Float32()
}

// numeric constrains the wrapper scalars that are plain conversions of the
// built-in integer and float types (Complex128 and Float16 are excluded:
// neither converts elementwise from a real literal).
type numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Nums converts built-in numeric literals into a wrapper-scalar slice,
// ready for NewFromSlice:
//
//	m, err := dense.NewFromSlice(2, 3, dense.Nums[dense.Float64](1, 2, 3, 4, 5, 6))
func Nums[W numeric, N constraints.Integer | constraints.Float](xs ...N) []W {
	out := make([]W, len(xs))
	for i, x := range xs {
		out[i] = W(x)
	}
	return out
}
