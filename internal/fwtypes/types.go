package fwtypes

// Integer is a type constraint for the integer element types accepted by
// the transforms. Arithmetic wraps on overflow as usual in Go.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is a type constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint shared by all Walsh transforms.
// Only addition, subtraction and copy are required by the kernels;
// conversion to float64 is used by the scaling helpers.
type Number interface {
	Integer | Float
}
