// densebench exercises the four dense multiplication algorithms across a
// size sweep and reports throughput, with optional verification against
// gonum as an independent reference implementation.
//
// Examples:
//
//	densebench -max-n 512
//	densebench -sizes 64,128,256 -algos block_ijp,block_ipj -reps 5
//	densebench -verify -max-n 256
//	densebench -baseline -csv results.csv
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/janpfeifer/must"
	"github.com/ninjaro/matrix-centipede/dense"
	"k8s.io/klog/v2"
)

var (
	flagMaxN = flag.Int("max-n", 1536, "Largest square size included from the default ladder. "+
		"Ignored when -sizes is given.")
	flagSizes = flag.String("sizes", "", "Comma-separated list of square sizes to sweep, overriding the default ladder.")
	flagAlgos = flag.String("algos", "native,transpose,block_ijp,block_ipj",
		"Comma-separated multiplication algorithms to benchmark.")
	flagReps     = flag.Int("reps", 3, "Repetitions per (algorithm, size) pair; the best time is reported.")
	flagTile     = flag.Int("tile", 0, "Tile override for the tiled algorithms; 0 selects the heuristic.")
	flagCSV      = flag.String("csv", "", "Optional path to also write the results as CSV.")
	flagBaseline = flag.Bool("baseline", false, "Include a gonum mat.Dense baseline row per size.")
	flagVerify   = flag.Bool("verify", false, "Verify all algorithms against gonum within 1e-9 relative tolerance, then exit.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	sizes := must.M1(parseSizes(*flagSizes, *flagMaxN))
	algos := must.M1(parseAlgos(*flagAlgos))

	if *flagVerify {
		if err := runVerify(sizes, algos, *flagTile); err != nil {
			klog.Exitf("verification failed: %v", err)
		}
		fmt.Println("all algorithms agree with the reference within tolerance")
		return
	}

	results := runSweep(sizes, algos, *flagTile, *flagReps, *flagBaseline)
	renderTable(os.Stdout, results)
	if *flagCSV != "" {
		must.M(writeCSV(*flagCSV, results))
		klog.Infof("wrote %d rows to %s", len(results), *flagCSV)
	}
}

// parseSizes resolves the sweep ladder: either the explicit -sizes list or
// the default ladder clamped by -max-n.
func parseSizes(spec string, maxN int) ([]int, error) {
	if spec == "" {
		var sizes []int
		for _, n := range defaultSizes {
			if n > maxN {
				break
			}
			sizes = append(sizes, n)
		}
		if len(sizes) == 0 {
			return nil, fmt.Errorf("-max-n %d excludes every default size", maxN)
		}
		return sizes, nil
	}
	var sizes []int
	for _, field := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q in -sizes", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// parseAlgos resolves the -algos list against the canonical names.
func parseAlgos(spec string) ([]dense.Algo, error) {
	var algos []dense.Algo
	for _, field := range strings.Split(spec, ",") {
		algo, err := dense.ParseAlgo(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid algorithm %q in -algos", field)
		}
		algos = append(algos, algo)
	}
	return algos, nil
}
