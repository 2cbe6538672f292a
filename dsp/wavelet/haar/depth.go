package haar

import (
	"unsafe"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// MinStepLength is the shortest block a single level can split.
// Decomposition stops once the trend reaches MinStepLength/2 == 1 coefficient.
const MinStepLength = 2

// Float is the numeric ring the transform is defined over: addition,
// subtraction and scaling by 1/sqrt(2).
type Float = core.Float

// invSqrt2 is the orthonormal Haar scale 1/sqrt(2).
const invSqrt2 = 0.70710678118654752440084436210484903928483593768847

// MaxDepth returns the deepest decomposition supported by a signal of length n:
// the number of halvings that keep a block of at least MinStepLength samples,
// i.e. floor(log2(n)). Returns 0 for n < MinStepLength.
func MaxDepth(n int) int {
	if n < MinStepLength {
		return 0
	}
	return core.Log2(n)
}

func validateSignal(op string, n int) error {
	if n < MinStepLength {
		return &LengthError{Op: op, Length: n, Reason: "need at least 2 samples"}
	}
	if !core.IsPowerOfTwo(n) {
		return &LengthError{Op: op, Length: n, Reason: "length must be a power of two"}
	}
	return nil
}

func validateDepth(op string, depth, n int) error {
	maxDepth := MaxDepth(n)
	if depth < 0 || depth > maxDepth {
		return &DepthError{Op: op, Requested: depth, Max: maxDepth, Length: n}
	}
	return nil
}

func validatePair[F Float](op string, a, b []F) error {
	if len(a) != len(b) {
		return &DimensionError{Op: op, What: "buffer length", Got: len(b), Want: len(a)}
	}
	if overlap(a, b) {
		return errAliased(op)
	}
	return nil
}

// overlap reports whether the backing memory of a and b intersects.
func overlap[F Float](a, b []F) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size
	return a0 < b1 && b0 < a1
}
