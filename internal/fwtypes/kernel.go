package fwtypes

// KernelFunc transforms data in place. The caller guarantees that
// len(data) is a power of two; kernels perform no validation.
type KernelFunc[T Number] func(data []T)
