package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-12 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff(a, b[:2]); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRoundTripToleranceScales(t *testing.T) {
	small := RoundTripTolerance(16, 2, 1)
	large := RoundTripTolerance(4096, 2, 1)
	if !(large > small) {
		t.Fatalf("tolerance should grow with length: %v <= %v", large, small)
	}
	if RoundTripTolerance(16, 2, 100) <= small {
		t.Fatal("tolerance should grow with magnitude")
	}
	if RoundTripTolerance(16, 2, 0.01) != small {
		t.Fatal("peaks below 1 should clamp to 1")
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-13, 2}, 1e-12)
	RequireAll(t, []float64{0, 1e-14}, 0, 1e-12)
}
