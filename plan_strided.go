package algofwt

import (
	"fmt"

	"github.com/cwbudde/algo-fwt/internal/walsh"
)

// ForwardStrided computes the forward transform on strided data: element i
// is read from src[i*stride] and written to dst[i*stride]. With
// stride=numCols this transforms one column of a row-major matrix.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, false)
}

// InverseStrided computes the inverse transform on strided data.
// Errors are as for ForwardStrided and Inverse.
func (p *Plan[T]) InverseStrided(dst, src []T, stride int) error {
	return p.transformStrided(dst, src, stride, true)
}

// TransformStrided computes either the forward or inverse strided transform
// based on the inverse flag.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int, inverse bool) error {
	return p.transformStrided(dst, src, stride, inverse)
}

func (p *Plan[T]) transformStrided(dst, src []T, stride int, inverse bool) error {
	if err := p.validateStridedSlices(dst, src, stride); err != nil {
		return err
	}

	if stride == 1 {
		return p.Transform(dst[:p.n], src[:p.n], inverse)
	}

	if inverse && !p.invertible {
		return fmt.Errorf("%w: %d overflows the element type", ErrInvalidLength, p.n)
	}

	buffer := p.stridedScratch[:p.n]
	for i := range p.n {
		buffer[i] = src[i*stride]
	}

	p.kernel(buffer)

	if inverse {
		walsh.Divide(buffer, p.n)
	}

	for i := range p.n {
		dst[i*stride] = buffer[i]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	if stride == 1 {
		if len(dst) < p.n || len(src) < p.n {
			return ErrLengthMismatch
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)

	maxIndex := p.n - 1
	if maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return fmt.Errorf("%w: stride %d needs %d elements, got dst=%d src=%d",
			ErrLengthMismatch, stride, required, len(dst), len(src))
	}

	return nil
}
