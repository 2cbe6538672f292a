package coeff

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

const tolerance = 1e-12

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || s.RMS != 0 || s.Peak != 0 || s.Sparsity != 0 {
		t.Fatalf("Calculate(nil) = %+v", s)
	}
	if !math.IsInf(s.RMS_dB, -1) || !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("dB fields = %v, %v, want -Inf", s.RMS_dB, s.Peak_dB)
	}
}

func TestCalculateValues(t *testing.T) {
	s := Calculate([]float64{3, 0, -4, 0})

	if s.Length != 4 {
		t.Errorf("Length: got %d, want 4", s.Length)
	}
	if math.Abs(s.Mean-(-0.25)) > tolerance {
		t.Errorf("Mean: got %g, want -0.25", s.Mean)
	}
	if math.Abs(s.RMS-2.5) > tolerance {
		t.Errorf("RMS: got %g, want 2.5", s.RMS)
	}
	if s.Peak != 4 || s.PeakPos != 2 {
		t.Errorf("Peak: got %g at %d, want 4 at 2", s.Peak, s.PeakPos)
	}
	if math.Abs(s.CrestFactor-1.6) > tolerance {
		t.Errorf("CrestFactor: got %g, want 1.6", s.CrestFactor)
	}
	if s.Zeros != 2 || s.Sparsity != 0.5 {
		t.Errorf("Zeros: got %d (%g), want 2 (0.5)", s.Zeros, s.Sparsity)
	}
	if math.Abs(s.Peak_dB-20*math.Log10(4)) > tolerance {
		t.Errorf("Peak_dB: got %g", s.Peak_dB)
	}
}

func TestCalculateAllZero(t *testing.T) {
	s := Calculate(make([]float64, 8))
	if s.CrestFactor != 0 {
		t.Errorf("CrestFactor: got %g, want 0", s.CrestFactor)
	}
	if s.Sparsity != 1 {
		t.Errorf("Sparsity: got %g, want 1", s.Sparsity)
	}
}

func TestCalculateWithThreshold(t *testing.T) {
	s := CalculateWithThreshold([]float64{0.01, -0.02, 1}, 0.05)
	if s.Zeros != 2 {
		t.Fatalf("Zeros: got %d, want 2", s.Zeros)
	}
}

func TestBandsDCSignal(t *testing.T) {
	const n = 32
	a := testutil.DC(1, n)
	depth := haar.MaxDepth(n)
	coeffs, _, err := haar.Transform(a, make([]float64, n), depth)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	bands, err := Bands(coeffs, depth)
	if err != nil {
		t.Fatalf("Bands() error = %v", err)
	}
	if len(bands) != depth+1 {
		t.Fatalf("len(bands) = %d, want %d", len(bands), depth+1)
	}

	trend := bands[0]
	if trend.Kind != haar.BandTrend || math.Abs(trend.Peak-math.Sqrt(n)) > 1e-12 {
		t.Fatalf("trend band = %+v, want peak sqrt(%d)", trend, n)
	}
	for _, b := range bands[1:] {
		if b.Sparsity != 1 {
			t.Fatalf("level %d fluctuation sparsity = %g, want 1", b.Level, b.Sparsity)
		}
	}
}

func TestBandsErrors(t *testing.T) {
	if _, err := Bands(make([]float64, 8), 5); !errors.Is(err, haar.ErrDepthExceeded) {
		t.Fatalf("Bands() error = %v, want ErrDepthExceeded", err)
	}
}
