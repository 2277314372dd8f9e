package algofwt

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fwt/internal/walsh"
)

// Filter weights the sequency components of v: coefficient s of the
// sequency transform is multiplied by gains[s] before transforming back.
// A gain of 1 everywhere reproduces v; a falling ramp gives a smooth
// low-pass.
//
// Returns ErrInvalidLength if len(v) is not a power of two and
// ErrLengthMismatch if len(gains) differs from len(v).
func Filter(v, gains []float64) ([]float64, error) {
	coeffs, err := Sequency(v)
	if err != nil {
		return nil, err
	}

	if len(gains) != len(v) {
		return nil, fmt.Errorf("%w: %d gains for %d values", ErrLengthMismatch, len(gains), len(v))
	}

	vecmath.MulBlockInPlace(coeffs, gains)

	return inverseSequency(coeffs)
}

// Truncate returns v with every sequency component at index keep or above
// removed: the sequency transform of v is cut to its first keep
// coefficients and transformed back. keep is clamped to [0, len(v)], so
// keep=len(v) reproduces v and keep=1 yields the mean of v in every element.
//
// Returns ErrInvalidLength if len(v) is not a power of two.
func Truncate(v []float64, keep int) ([]float64, error) {
	coeffs, err := Sequency(v)
	if err != nil {
		return nil, err
	}

	keep = min(max(keep, 0), len(v))
	clear(coeffs[keep:])

	return inverseSequency(coeffs)
}

func inverseSequency(coeffs []float64) ([]float64, error) {
	walsh.Sequency(coeffs)

	return Scale(coeffs)
}
