// Package buffer provides reusable float64 scratch memory for transforms.
//
// The wavelet routines write into caller-owned slices and never keep them
// across calls. Buffer and Pool only help callers, and the 2D pyramid's
// per-row workers, avoid reallocating temporaries in hot loops.
package buffer
