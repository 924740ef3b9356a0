package main

import (
	"math"
	"time"

	"github.com/janpfeifer/must"
	"github.com/ninjaro/matrix-centipede/dense"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// defaultSizes is the sweep ladder, clamped by -max-n.
var defaultSizes = []int{32, 48, 64, 96, 128, 160, 192, 224, 256, 384, 512, 768, 1024, 1536}

// Deterministic fill pattern: value(idx) = idx % 257 - 128.
// Small signed integers keep float products exact, so the gonum
// comparison in -verify can use a tight tolerance.
const (
	patternModulus = 257
	patternOffset  = 128
)

// verifyTolerance is the relative tolerance for the -verify comparison.
const verifyTolerance = 1e-9

// result is one measured (algorithm, size) cell.
type result struct {
	algo  string
	n     int
	best  time.Duration
	flops float64
}

func patternValue(idx int) float64 {
	return float64(idx%patternModulus - patternOffset)
}

func patternBuffer(n int) []float64 {
	buf := make([]float64, n*n)
	for i := range buf {
		buf[i] = patternValue(i)
	}
	return buf
}

func patternMatrix(n int) *dense.Matrix[dense.Float64] {
	buf := patternBuffer(n)
	out := make([]dense.Float64, len(buf))
	for i, v := range buf {
		out[i] = dense.Float64(v)
	}
	return must.M1(dense.NewFromSlice(n, n, out))
}

// flopsPer mirrors the FLOP accounting of the reference harness:
// 2*(n-1)*n*n useful floating-point operations per n×n product.
func flopsPer(n int) float64 {
	return 2 * float64(n-1) * float64(n) * float64(n)
}

// runSweep measures every (algorithm, size) pair, keeping the best of
// reps wall-clock timings per cell.
func runSweep(sizes []int, algos []dense.Algo, tile, reps int, baseline bool) []result {
	total := len(sizes) * len(algos)
	if baseline {
		total += len(sizes)
	}
	bar := progressbar.Default(int64(total), "sweep")
	var results []result
	for _, n := range sizes {
		a, b := patternMatrix(n), patternMatrix(n)
		for _, algo := range algos {
			best := time.Duration(math.MaxInt64)
			for r := 0; r < reps; r++ {
				start := time.Now()
				c := must.M1(dense.Multiply(a, b, dense.WithAlgo(algo), dense.WithTile(tile)))
				elapsed := time.Since(start)
				sink = c.Data()
				if elapsed < best {
					best = elapsed
				}
			}
			klog.V(1).Infof("%s n=%d best=%s", algo, n, best)
			results = append(results, result{
				algo:  algo.String(),
				n:     n,
				best:  best,
				flops: flopsPer(n) / best.Seconds(),
			})
			_ = bar.Add(1)
		}
		if baseline {
			results = append(results, runBaseline(n, reps))
			_ = bar.Add(1)
		}
	}
	_ = bar.Finish()
	return results
}

// sink defeats dead-code elimination of the timed products.
var sink []dense.Float64

// runBaseline times gonum's mat.Dense product on the same pattern.
func runBaseline(n, reps int) result {
	a := mat.NewDense(n, n, patternBuffer(n))
	b := mat.NewDense(n, n, patternBuffer(n))
	best := time.Duration(math.MaxInt64)
	for r := 0; r < reps; r++ {
		var c mat.Dense
		start := time.Now()
		c.Mul(a, b)
		elapsed := time.Since(start)
		baselineSink = c.RawMatrix().Data
		if elapsed < best {
			best = elapsed
		}
	}
	return result{algo: "gonum", n: n, best: best, flops: flopsPer(n) / best.Seconds()}
}

var baselineSink []float64

// runVerify recomputes every sweep size under every algorithm and checks
// each cell against the gonum reference within verifyTolerance.
func runVerify(sizes []int, algos []dense.Algo, tile int) error {
	for _, n := range sizes {
		a, b := patternMatrix(n), patternMatrix(n)
		ref := referenceProduct(n)
		for _, algo := range algos {
			c, err := dense.Multiply(a, b, dense.WithAlgo(algo), dense.WithTile(tile))
			if err != nil {
				return errors.Wrapf(err, "multiplying n=%d with %s", n, algo)
			}
			data := c.Data()
			for i, want := range ref {
				got := float64(data[i])
				if !withinTolerance(got, want) {
					return errors.Errorf("%s n=%d cell %d: got %g, reference %g", algo, n, i, got, want)
				}
			}
		}
		klog.V(1).Infof("n=%d verified across %d algorithms", n, len(algos))
	}
	return nil
}

func referenceProduct(n int) []float64 {
	a := mat.NewDense(n, n, patternBuffer(n))
	b := mat.NewDense(n, n, patternBuffer(n))
	var c mat.Dense
	c.Mul(a, b)
	return c.RawMatrix().Data
}

func withinTolerance(got, want float64) bool {
	if got == want {
		return true
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	return math.Abs(got-want) <= verifyTolerance*scale
}
