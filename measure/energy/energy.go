package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// machineEpsilon is the float64 unit roundoff spacing at 1.0.
const machineEpsilon = 2.220446049250313e-16

// toleranceSafety scales the rounding budget of [Tolerance].
const toleranceSafety = 8

var (
	// ErrEnergyMismatch reports an energy difference above tolerance.
	ErrEnergyMismatch = errors.New("energy: energy not preserved within tolerance")
	// ErrLengthMismatch reports signals of different lengths.
	ErrLengthMismatch = errors.New("energy: length mismatch")
)

// Energy returns the sum of squared samples.
func Energy(x []float64) float64 {
	return vecmath.DotProduct(x, x)
}

// EnergyT is the generic form of [Energy]. Other sample types are widened to
// float64 before accumulating.
func EnergyT[F core.Float](x []F) float64 {
	if v, ok := any(x).([]float64); ok {
		return Energy(v)
	}
	return Energy(core.Widen(nil, x))
}

// Tolerance returns the absolute energy tolerance for a length-n signal of
// energy e: a rounding budget proportional to both length and magnitude.
func Tolerance(n int, e float64) float64 {
	if n < 1 {
		n = 1
	}
	return toleranceSafety * float64(n) * machineEpsilon * math.Max(math.Abs(e), 1)
}

// Report summarizes an energy comparison.
type Report struct {
	Before    float64
	After     float64
	Diff      float64
	Tolerance float64
}

// OK reports whether the difference is within tolerance.
func (r Report) OK() bool {
	return math.Abs(r.Diff) <= r.Tolerance
}

func (r Report) String() string {
	return fmt.Sprintf("before=%.12g after=%.12g diff=%.3g tol=%.3g", r.Before, r.After, r.Diff, r.Tolerance)
}

// Check compares the energy of before and after. tol <= 0 selects
// [Tolerance] for the input. An ErrEnergyMismatch error is returned together
// with the report when the difference is out of tolerance.
func Check(before, after []float64, tol float64) (Report, error) {
	if len(before) != len(after) {
		return Report{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(before), len(after))
	}

	r := Report{
		Before: Energy(before),
		After:  Energy(after),
	}
	r.Diff = r.After - r.Before
	r.Tolerance = tol
	if tol <= 0 {
		r.Tolerance = Tolerance(len(before), r.Before)
	}

	if !r.OK() {
		return r, fmt.Errorf("%w: %s", ErrEnergyMismatch, r)
	}
	return r, nil
}

// MaxAbsDiff returns the largest absolute sample difference, the round-trip
// error of a reconstruction.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
