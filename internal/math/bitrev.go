package math

// ComputeBitReversalIndices returns the bit-reversal permutation of
// 0..n-1 for a power-of-two n. It returns nil for n <= 0.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := range n {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for range bits {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// Gray returns the reflected binary Gray code of x.
func Gray(x int) int {
	return x ^ (x >> 1)
}

// GrayDecode inverts Gray.
func GrayDecode(g int) int {
	x := g
	for shift := g >> 1; shift != 0; shift >>= 1 {
		x ^= shift
	}

	return x
}

// ComputeSequencyIndices returns, for each sequency index s of a size-n
// Walsh transform, the Hadamard (natural order) index h holding the same
// coefficient: h = ReverseBits(Gray(s), log2 n).
func ComputeSequencyIndices(n int) []int {
	bitrev := ComputeBitReversalIndices(n)
	if bitrev == nil {
		return nil
	}

	indices := make([]int, n)
	for s := range n {
		indices[s] = bitrev[Gray(s)]
	}

	return indices
}

// ComputeHadamardIndices is the inverse of ComputeSequencyIndices: for each
// Hadamard index h it returns the sequency index s = GrayDecode(ReverseBits(h, log2 n)).
func ComputeHadamardIndices(n int) []int {
	bitrev := ComputeBitReversalIndices(n)
	if bitrev == nil {
		return nil
	}

	for h, r := range bitrev {
		bitrev[h] = GrayDecode(r)
	}

	return bitrev
}
