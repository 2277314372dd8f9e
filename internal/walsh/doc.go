// Package walsh contains the in-place Fast Walsh Transform kernels.
//
// Kernels operate on a slice whose length is a power of two and perform
// no validation; the public package checks lengths before dispatching here.
// Every kernel uses only addition and subtraction, so the element type of
// the output always matches the input.
package walsh
