package algofwt

import (
	"fmt"

	"github.com/cwbudde/algo-fwt/internal/fwtypes"
	m "github.com/cwbudde/algo-fwt/internal/math"
	"github.com/cwbudde/algo-fwt/internal/walsh"
)

// Plan is a pre-validated Walsh transform of a fixed size and ordering.
//
// Forward, Inverse, InPlace and InverseInPlace hold no state beyond the
// plan's configuration and may be called concurrently on disjoint slices.
// The strided methods share a scratch buffer and must not run concurrently
// on the same Plan.
type Plan[T Number] struct {
	n        int
	ordering Ordering
	kernel   fwtypes.KernelFunc[T]

	// invertible is false when n does not fit in T, e.g. n=256 for int8.
	invertible bool

	stridedScratch []T
}

// NewPlan creates a Walsh transform plan for sequences of length n.
//
// Returns ErrInvalidLength if n is not a positive power of two and
// ErrInvalidOrdering for an unknown ordering.
//
// Example:
//
//	plan, err := algofwt.NewPlan[float64](1024, algofwt.OrderSequency)
//	if err != nil {
//	    return err
//	}
//	err = plan.Forward(coeffs, samples)
func NewPlan[T Number](n int, ordering Ordering) (*Plan[T], error) {
	if !m.IsPowerOf2(n) {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}

	if !ordering.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrdering, ordering)
	}

	return &Plan[T]{
		n:              n,
		ordering:       ordering,
		kernel:         walsh.Select[T](ordering),
		invertible:     float64(T(n)) == float64(n),
		stridedScratch: make([]T, n),
	}, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Ordering returns the coefficient ordering the plan produces.
func (p *Plan[T]) Ordering() Ordering {
	return p.ordering
}

// Forward computes the Walsh transform of src into dst.
// dst and src may be the same slice. Only the first Len() elements of each
// are used.
//
// Returns ErrNilSlice if dst or src is nil, and ErrLengthMismatch if either
// is shorter than Len().
func (p *Plan[T]) Forward(dst, src []T) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	p.forward(dst, src)

	return nil
}

// Inverse recovers the sequence whose transform is src, writing it to dst.
// The transform is applied again and every element divided by Len() in the
// element type. For integer T the division truncates. Inverse(Forward(x))
// returns x exactly only while Len()*max|x[i]| fits in T; beyond that the
// intermediate sums wrap and the recovered values are wrong, with no error.
//
// Returns ErrInvalidLength if Len() is not representable in T.
func (p *Plan[T]) Inverse(dst, src []T) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	if !p.invertible {
		return fmt.Errorf("%w: %d overflows the element type", ErrInvalidLength, p.n)
	}

	p.forward(dst, src)
	walsh.Divide(dst[:p.n], p.n)

	return nil
}

// InPlace computes the forward transform of data in place.
func (p *Plan[T]) InPlace(data []T) error {
	return p.Forward(data, data)
}

// InverseInPlace computes the inverse transform of data in place.
func (p *Plan[T]) InverseInPlace(data []T) error {
	return p.Inverse(data, data)
}

// Transform computes either the forward or inverse transform based on the
// inverse flag.
func (p *Plan[T]) Transform(dst, src []T, inverse bool) error {
	if inverse {
		return p.Inverse(dst, src)
	}

	return p.Forward(dst, src)
}

func (p *Plan[T]) forward(dst, src []T) {
	dst = dst[:p.n]
	copy(dst, src[:p.n])
	p.kernel(dst)
}

func (p *Plan[T]) validate(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.n || len(src) < p.n {
		return fmt.Errorf("%w: need %d elements, got dst=%d src=%d",
			ErrLengthMismatch, p.n, len(dst), len(src))
	}

	return nil
}
