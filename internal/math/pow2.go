package math

import "math/bits"

// IsPowerOfTwo reports whether n is exactly 2^k for some k >= 0.
// Zero satisfies n&(n-1) == 0 but is not a power of two.
func IsPowerOfTwo(n uint) bool {
	return n != 0 && n&(n-1) == 0
}

// IsPowerOf2 is the int form of IsPowerOfTwo. Negative values are never
// powers of two.
func IsPowerOf2(n int) bool {
	if n <= 0 {
		return false
	}

	return IsPowerOfTwo(uint(n))
}

// NextPowerOfTwo returns the smallest power of two >= n.
// Values <= 1 yield 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
