package walsh

import "github.com/cwbudde/algo-fwt/internal/fwtypes"

// Hadamard computes the natural (dyadic) ordered Walsh-Hadamard transform
// of data in place. No permutation is applied.
func Hadamard[T fwtypes.Number](data []T) {
	n := len(data)

	for lag := 1; lag < n; {
		offset := lag << 1
		ngroups := n / offset

		for group := range ngroups {
			base := group * offset

			for b := range lag {
				j := base + b
				k := j + lag
				data[j], data[k] = data[j]+data[k], data[j]-data[k]
			}
		}

		lag = offset
	}
}
