// Package algofwt computes Fast Walsh Transforms.
//
// Walsh functions are a binary-valued (±1) alternative to the Fourier basis.
// They form a complete orthogonal basis, and like the FFT the fast transform
// runs in O(n log n) time for a length n that is a power of two. Only
// addition and subtraction are used, so integer input produces exact integer
// output.
//
// Two orderings are provided:
//
//   - Sequency (Manz) ordering sorts the Walsh functions by their number of
//     sign changes, the analogue of frequency ordering.
//   - Hadamard (natural, dyadic) ordering follows the recursive construction
//     of the Hadamard matrix.
//
// Both transform matrices are symmetric and orthogonal up to a factor of n,
// so applying the same transform twice multiplies the input by n:
//
//	coeffs, _ := algofwt.Hadamard(x)
//	back, _ := algofwt.Hadamard(coeffs)
//	x2, _ := algofwt.Scale(back) // x2 equals x
//
// For repeated transforms of one size, NewPlan validates once and offers
// in-place, strided and batched execution.
package algofwt
