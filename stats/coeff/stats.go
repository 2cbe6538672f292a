// Package coeff summarizes wavelet coefficient vectors: magnitude, spread
// and sparsity, overall and per Haar band.
package coeff

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
)

// DefaultZeroThreshold is the magnitude at or below which a coefficient
// counts as zero for [Stats.Sparsity].
const DefaultZeroThreshold = 1e-12

// Stats holds summary statistics of a coefficient vector.
//
//nolint:revive
type Stats struct {
	Length  int
	Mean    float64
	RMS     float64
	RMS_dB  float64
	Peak    float64 // max |c|
	PeakPos int
	Peak_dB float64
	// CrestFactor is Peak / RMS, 0 for an all-zero vector.
	CrestFactor float64
	// Zeros counts coefficients with |c| <= threshold.
	Zeros    int
	Sparsity float64 // Zeros / Length
}

// BandStats pairs a band of a Haar decomposition with its statistics.
type BandStats struct {
	haar.Band
	Stats
}

func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}

// Calculate summarizes c with [DefaultZeroThreshold].
func Calculate(c []float64) Stats {
	return CalculateWithThreshold(c, DefaultZeroThreshold)
}

// CalculateWithThreshold summarizes c, counting |c[i]| <= threshold as zero.
// An empty input yields zero values and -Inf for the dB fields.
func CalculateWithThreshold(c []float64, threshold float64) Stats {
	n := len(c)
	if n == 0 {
		return Stats{RMS_dB: math.Inf(-1), Peak_dB: math.Inf(-1)}
	}

	peak := vecmath.MaxAbs(c)
	peakPos := -1
	zeros := 0
	for i, x := range c {
		a := math.Abs(x)
		if peakPos < 0 && a == peak {
			peakPos = i
		}
		if a <= threshold {
			zeros++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(vecmath.DotProduct(c, c) / nf)
	s := Stats{
		Length:   n,
		Mean:     vecmath.Sum(c) / nf,
		RMS:      rms,
		RMS_dB:   ampTodB(rms),
		Peak:     peak,
		PeakPos:  max(peakPos, 0),
		Peak_dB:  ampTodB(peak),
		Zeros:    zeros,
		Sparsity: float64(zeros) / nf,
	}
	if rms > 0 {
		s.CrestFactor = peak / rms
	}
	return s
}

// Bands summarizes every band of depth-level Haar coefficients in
// [haar.Layout] order.
func Bands(coeffs []float64, depth int) ([]BandStats, error) {
	bands, err := haar.Layout(len(coeffs), depth)
	if err != nil {
		return nil, err
	}
	out := make([]BandStats, len(bands))
	for i, b := range bands {
		out[i] = BandStats{Band: b, Stats: Calculate(b.Of(coeffs))}
	}
	return out, nil
}
