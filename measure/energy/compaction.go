package energy

import (
	"fmt"
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Compaction returns the fraction of total energy carried by the k
// largest-magnitude coefficients. k is clamped to [0, len(coeffs)].
// An all-zero input reports 1: no energy lies outside the kept set.
func Compaction(coeffs []float64, k int) float64 {
	powers := make([]float64, len(coeffs))
	vecmath.MulBlock(powers, coeffs, coeffs)
	return topFraction(powers, Energy(coeffs), k)
}

// SpectrumCompaction reports the same measure for the DFT of signal. Bin
// powers are scaled by 1/N so their sum equals the signal energy; bins are
// counted individually, including conjugate pairs.
func SpectrumCompaction(signal []float64, k int) (float64, error) {
	n := len(signal)
	if n == 0 {
		return 0, fmt.Errorf("spectrum compaction: signal must not be empty")
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("spectrum compaction: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	bins := make([]complex128, n)
	if err := plan.Forward(bins, in); err != nil {
		return 0, fmt.Errorf("spectrum compaction: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	powers := make([]float64, n)
	vecmath.Power(powers, re, im)
	vecmath.ScaleBlockInPlace(powers, 1/float64(n))

	// Parseval: the bin powers sum to the signal energy.
	return topFraction(powers, Energy(signal), k), nil
}

func topFraction(powers []float64, total float64, k int) float64 {
	k = max(0, min(k, len(powers)))
	if total == 0 {
		return 1
	}

	sorted := slices.Clone(powers)
	slices.SortFunc(sorted, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	return min(vecmath.Sum(sorted[:k])/total, 1)
}
