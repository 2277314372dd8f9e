// Command benchwalsh times the Walsh transform plans across sizes,
// orderings and modes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	algofwt "github.com/cwbudde/algo-fwt"
	"github.com/cwbudde/algo-fwt/internal/cpu"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeRoundtrip = "roundtrip"
)

type benchResult struct {
	size     int
	ordering algofwt.Ordering
	mode     string
	nsPerOp  float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "256,1024,4096,16384,65536", "comma-separated sizes (powers of two)")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		ordering = flag.String("ordering", "all", "transform ordering: sequency, hadamard, all")
		mode     = flag.String("mode", modeForward, "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	orderings, err := resolveOrderings(*ordering)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchwalsh: %v\n", err)
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("cpu=%s go=%s\n", cpu.DetectFeatures(), runtime.Version())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %10s  %12s  %10s\n", "size", "ordering", "mode", "ns/op", "ns/elem")

	var results []benchResult

	for _, n := range sizes {
		for _, ord := range orderings {
			for _, runMode := range resolveModes(*mode) {
				res, err := benchmarkSize(rnd, n, *iters, *warmup, ord, runMode)
				if err != nil {
					fmt.Fprintf(os.Stderr, "benchwalsh: n=%d %s %s: %v\n", n, ord, runMode, err)
					continue
				}

				results = append(results, res)
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].size < results[j].size
	})

	for _, res := range results {
		fmt.Printf("%8d  %10s  %10s  %12.1f  %10.3f\n",
			res.size, res.ordering, res.mode, res.nsPerOp, res.nsPerOp/float64(res.size))
	}
}

func benchmarkSize(rnd *rand.Rand, n, iters, warmup int, ordering algofwt.Ordering, mode string) (benchResult, error) {
	plan, err := algofwt.NewPlan[float64](n, ordering)
	if err != nil {
		return benchResult{}, err
	}

	src := make([]float64, n)
	for i := range src {
		src[i] = rnd.Float64()*2 - 1
	}

	dst := make([]float64, n)
	coeffs := make([]float64, n)

	if err := plan.Forward(coeffs, src); err != nil {
		return benchResult{}, err
	}

	for range warmup {
		if err := runPlanMode(plan, dst, src, coeffs, mode); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		if err := runPlanMode(plan, dst, src, coeffs, mode); err != nil {
			return benchResult{}, err
		}
	}

	elapsed := time.Since(start)

	return benchResult{
		size:     n,
		ordering: ordering,
		mode:     mode,
		nsPerOp:  float64(elapsed.Nanoseconds()) / float64(max(iters, 1)),
	}, nil
}

func runPlanMode(plan *algofwt.Plan[float64], dst, src, coeffs []float64, mode string) error {
	switch mode {
	case modeInverse:
		return plan.Inverse(dst, coeffs)
	case modeRoundtrip:
		if err := plan.Forward(dst, src); err != nil {
			return err
		}

		return plan.InverseInPlace(dst)
	default:
		return plan.Forward(dst, src)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeRoundtrip}
	case modeInverse, modeRoundtrip, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func resolveOrderings(name string) ([]algofwt.Ordering, error) {
	if name == "all" {
		return []algofwt.Ordering{algofwt.OrderSequency, algofwt.OrderHadamard}, nil
	}

	ord, err := algofwt.ParseOrdering(name)
	if err != nil {
		return nil, err
	}

	return []algofwt.Ordering{ord}, nil
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 || !algofwt.IsPowerOfTwo(uint(n)) {
			fmt.Fprintf(os.Stderr, "benchwalsh: skipping size %q (not a power of two)\n", part)
			continue
		}

		out = append(out, n)
	}

	return out
}
