package algofwt

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxFloat64s(t *testing.T, got, want []float64, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf(format+": length %d, want %d", append(args, len(got), len(want))...)
	}

	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf(format+": [%d] got %v want %v (diff=%v)", append(args, i, got[i], want[i], math.Abs(got[i]-want[i]))...)
		}
	}
}

func randomFloat64s(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func randomInts(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))

	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(2001) - 1000
	}

	return out
}

func impulse[T Number](n, p int) []T {
	v := make([]T, n)
	v[p] = 1

	return v
}
