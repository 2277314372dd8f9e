package walsh

import "github.com/cwbudde/algo-fwt/internal/fwtypes"

// Sequency computes the sequency-ordered (Manz) Walsh transform of data in
// place: a bit-reversal permutation followed by a butterfly network whose
// sign pattern alternates between neighbouring groups.
func Sequency[T fwtypes.Number](data []T) {
	n := len(data)
	if n < 2 {
		return
	}

	bitReversePermute(data)

	for offset := n; offset > 1; {
		lag := offset >> 1
		ngroups := n / offset

		for group := range ngroups {
			base := group * offset
			odd := group&1 == 1

			for i := range lag {
				j := base + i
				k := j + lag
				a, b := data[j], data[k]

				if odd {
					data[j], data[k] = a-b, a+b
				} else {
					data[j], data[k] = a+b, a-b
				}
			}
		}

		offset = lag
	}
}

// bitReversePermute reorders data by reversing the bits of each index,
// using the incremental reversed counter instead of a lookup table.
// The last two indices never need a swap, so the walk stops at n-3.
func bitReversePermute[T any](data []T) {
	n := len(data)
	if n <= 2 {
		return
	}

	j := 0

	for i := 0; i < n-2; i++ {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}

		k := n >> 1
		for k <= j {
			j -= k
			k >>= 1
		}

		j += k
	}
}
