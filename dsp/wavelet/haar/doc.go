// Package haar provides the orthonormal multi-resolution Haar wavelet
// transform for 1D signals and its separable 2D pyramid extension.
//
// One decomposition level maps a block of even length n into a trend
// (low-pass) half followed by a fluctuation (high-pass) half:
//
//	trend[i] = (x[2i] + x[2i+1]) / sqrt(2)
//	fluct[i] = (x[2i] - x[2i+1]) / sqrt(2)
//
// Every level is an orthonormal map, so energy (sum of squares) is preserved
// and [Unstep] is the exact inverse of [Step].
//
// # Multi-level transform
//
// Deeper levels re-transform only the trend of the previous level. The
// recursion alternates between two caller-owned buffers held by a
// [PingPong]; no allocation happens after construction:
//
//	a := signal            // length must be a power of two
//	b := make([]float64, len(a))
//	coeffs, side, err := haar.Transform(a, b, haar.MaxDepth(len(a)))
//	// coeffs aliases a (side == SideA) or b (side == SideB)
//
// The result buffer alternates with the parity of depth, so callers must use
// the returned slice instead of assuming it is a. [Layout] describes where
// each band sits inside the coefficient buffer.
//
// # Depth convention
//
// [MaxDepth] allows decomposition down to a single trend coefficient:
// MaxDepth(n) == floor(log2(n)), computed with a bit scan. The last level
// therefore transforms a block of [MinStepLength] samples.
//
// # 2D pyramid
//
// [Forward2D] applies one level to the first rows of the active sub-block,
// then to its columns, and shrinks the sub-block to the top-left quadrant for
// the next iteration. [Inverse2D] mirrors that order exactly. Rows (and then
// columns) are independent within a level; [WithWorkers] processes them in
// parallel.
//
// # Errors
//
// All validation happens before any buffer is touched. Failures match
// [ErrInvalidLength], [ErrDepthExceeded], [ErrDimensionMismatch] or
// [ErrAliasedBuffers] with errors.Is, and carry the offending values in
// [*LengthError], [*DepthError] and [*DimensionError].
package haar
