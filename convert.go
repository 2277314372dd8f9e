package algofwt

import (
	"fmt"

	m "github.com/cwbudde/algo-fwt/internal/math"
)

// HadamardToSequency reorders Hadamard-ordered coefficients in src into
// sequency order in dst. dst must not overlap src.
//
// Returns ErrNilSlice for nil slices, ErrInvalidLength if len(src) is not a
// power of two and ErrLengthMismatch if dst is shorter than src.
func HadamardToSequency[T any](dst, src []T) error {
	if err := checkPermutation(dst, src); err != nil {
		return err
	}

	indices := m.ComputeSequencyIndices(len(src))

	for s, h := range indices {
		dst[s] = src[h]
	}

	return nil
}

// SequencyToHadamard is the inverse permutation of HadamardToSequency.
func SequencyToHadamard[T any](dst, src []T) error {
	if err := checkPermutation(dst, src); err != nil {
		return err
	}

	indices := m.ComputeHadamardIndices(len(src))

	for h, s := range indices {
		dst[h] = src[s]
	}

	return nil
}

func checkPermutation[T any](dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if err := checkLength(len(src)); err != nil {
		return err
	}

	if len(dst) < len(src) {
		return fmt.Errorf("%w: dst=%d src=%d", ErrLengthMismatch, len(dst), len(src))
	}

	return nil
}
