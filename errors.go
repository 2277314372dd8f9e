package algofwt

import "errors"

// Sentinel errors returned by Walsh transform operations.
// Returned errors may wrap these with additional context; match them with
// errors.Is.
var (
	// ErrInvalidLength is returned when a transform is asked to work on a
	// sequence whose length is not a positive power of 2, or when Scale is
	// called on an empty sequence.
	ErrInvalidLength = errors.New("algofwt: invalid length")

	// ErrNilSlice is returned when a nil slice is passed to a Plan method.
	ErrNilSlice = errors.New("algofwt: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("algofwt: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or index overflow).
	ErrInvalidStride = errors.New("algofwt: invalid stride")

	// ErrInvalidOrdering is returned for an Ordering value that names no
	// transform.
	ErrInvalidOrdering = errors.New("algofwt: invalid ordering")
)
