package walsh

import "github.com/cwbudde/algo-fwt/internal/fwtypes"

// Select returns the in-place kernel for ordering, or nil if the ordering
// is unknown.
func Select[T fwtypes.Number](ordering fwtypes.Ordering) fwtypes.KernelFunc[T] {
	switch ordering {
	case fwtypes.OrderSequency:
		return Sequency[T]
	case fwtypes.OrderHadamard:
		return Hadamard[T]
	default:
		return nil
	}
}

// Divide divides every element of data by n in the element type.
// Integer division truncates toward zero.
func Divide[T fwtypes.Number](data []T, n int) {
	if n == 1 {
		return
	}

	d := T(n)
	for i := range data {
		data[i] /= d
	}
}
