// Package kernels implements the quantized GEMV core: the padded physical
// layouts derived from an int8 weight matrix and the kernel strategies that
// consume them.
//
// All kernels accumulate in int32 and compute the same exact integer result;
// they differ only in traversal order and memory layout. Each product is
// bounded by 127*127, so results cannot overflow while the padded width
// stays at or below MaxSafeK. Larger widths are a caller precondition, not
// a checked error.
package kernels
