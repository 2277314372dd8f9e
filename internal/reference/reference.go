// Package reference provides slow, obviously-correct Walsh transforms
// computed directly from the transform matrices. Intended for tests only.
package reference

import "math/bits"

// HadamardMatrix returns the n×n natural-order Hadamard matrix with
// entries (-1)^popcount(i&j). n must be a power of two.
func HadamardMatrix(n int) [][]int {
	h := make([][]int, n)
	for i := range n {
		h[i] = make([]int, n)
		for j := range n {
			if bits.OnesCount(uint(i&j))&1 == 0 {
				h[i][j] = 1
			} else {
				h[i][j] = -1
			}
		}
	}

	return h
}

// SignChanges counts the sign changes along row.
func SignChanges(row []int) int {
	changes := 0
	for i := 1; i < len(row); i++ {
		if row[i] != row[i-1] {
			changes++
		}
	}

	return changes
}

// SequencyMatrix returns the rows of the Hadamard matrix reordered so that
// row s has exactly s sign changes.
func SequencyMatrix(n int) [][]int {
	h := HadamardMatrix(n)
	w := make([][]int, n)

	for _, row := range h {
		w[SignChanges(row)] = row
	}

	return w
}

// Apply multiplies m by v in float64.
func Apply(m [][]int, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		var sum float64
		for j, s := range row {
			sum += float64(s) * v[j]
		}

		out[i] = sum
	}

	return out
}

// Hadamard is the O(n²) natural-order Walsh transform of v.
func Hadamard(v []float64) []float64 {
	return Apply(HadamardMatrix(len(v)), v)
}

// Sequency is the O(n²) sequency-order Walsh transform of v.
func Sequency(v []float64) []float64 {
	return Apply(SequencyMatrix(len(v)), v)
}
