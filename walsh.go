package algofwt

import (
	"fmt"

	m "github.com/cwbudde/algo-fwt/internal/math"
	"github.com/cwbudde/algo-fwt/internal/walsh"
)

// IsPowerOfTwo reports whether n is exactly 2^k for some k >= 0, in O(1).
// IsPowerOfTwo(0) is false.
func IsPowerOfTwo(n uint) bool {
	return m.IsPowerOfTwo(n)
}

// Sequency returns the sequency-ordered (Manz) Walsh transform of v in a
// newly allocated slice. v is not modified.
//
// Returns ErrInvalidLength if len(v) is not a power of two (including 0).
func Sequency[T Number](v []T) ([]T, error) {
	return transformCopy(v, walsh.Sequency[T])
}

// Hadamard returns the Hadamard-ordered (natural) Walsh transform of v in a
// newly allocated slice. v is not modified.
//
// Returns ErrInvalidLength if len(v) is not a power of two (including 0).
func Hadamard[T Number](v []T) ([]T, error) {
	return transformCopy(v, walsh.Hadamard[T])
}

// SequencyInPlace overwrites v with its sequency-ordered Walsh transform.
// On error v is left untouched.
func SequencyInPlace[T Number](v []T) error {
	if err := checkLength(len(v)); err != nil {
		return err
	}

	walsh.Sequency(v)

	return nil
}

// HadamardInPlace overwrites v with its Hadamard-ordered Walsh transform.
// On error v is left untouched.
func HadamardInPlace[T Number](v []T) error {
	if err := checkLength(len(v)); err != nil {
		return err
	}

	walsh.Hadamard(v)

	return nil
}

// Scale returns v divided element-wise by len(v), as float64.
// This is the scaling that turns two applications of the same transform
// back into the original sequence. The length need not be a power of two.
//
// Returns ErrInvalidLength for an empty v.
func Scale[T Number](v []T) ([]float64, error) {
	n := len(v)
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot scale an empty sequence", ErrInvalidLength)
	}

	length := float64(n)

	out := make([]float64, n)
	for i, x := range v {
		out[i] = float64(x) / length
	}

	return out, nil
}

func transformCopy[T Number](v []T, kernel func([]T)) ([]T, error) {
	if err := checkLength(len(v)); err != nil {
		return nil, err
	}

	out := make([]T, len(v))
	copy(out, v)
	kernel(out)

	return out, nil
}

func checkLength(n int) error {
	if !m.IsPowerOf2(n) {
		return fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}

	return nil
}
