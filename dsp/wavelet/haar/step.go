package haar

import "github.com/cwbudde/algo-vecmath"

// Step applies one forward Haar level to src and writes [trend | fluct] into dst.
//
// len(src) must be even and >= MinStepLength, dst must have the same length
// and must not share memory with src.
func Step(dst, src []float64) error {
	return StepT(dst, src)
}

// StepT is the generic form of [Step].
func StepT[F Float](dst, src []F) error {
	if err := validateStep("step", dst, src); err != nil {
		return err
	}
	step(dst, src)
	return nil
}

// Unstep inverts [Step]: src holds [trend | fluct], dst receives the
// interleaved samples.
func Unstep(dst, src []float64) error {
	return UnstepT(dst, src)
}

// UnstepT is the generic form of [Unstep].
func UnstepT[F Float](dst, src []F) error {
	if err := validateStep("unstep", dst, src); err != nil {
		return err
	}
	unstep(dst, src)
	return nil
}

// VisualizeStep computes the display mapping used by image previews:
// dst[i] = mean of the pair, dst[h+i] = 0.5 + 0.5*difference.
// The mapping is not orthonormal and must never be fed to [Unstep].
func VisualizeStep(dst, src []float64) error {
	if err := validateStep("visualize", dst, src); err != nil {
		return err
	}
	h := len(src) / 2
	for i := range h {
		a, b := src[2*i], src[2*i+1]
		dst[i] = (a + b) * 0.5
		dst[h+i] = 0.5 + 0.5*(a-b)
	}
	return nil
}

func validateStep[F Float](op string, dst, src []F) error {
	n := len(src)
	if n < MinStepLength || n%2 != 0 {
		return &LengthError{Op: op, Length: n, Reason: "length must be even and >= 2"}
	}
	return validatePair(op, src, dst)
}

// step and unstep assume validated, disjoint views of equal even length.
func step[F Float](dst, src []F) {
	if d, ok := any(dst).([]float64); ok {
		step64(d, any(src).([]float64))
		return
	}

	h := len(src) / 2
	s := F(invSqrt2)
	for i := range h {
		a, b := src[2*i], src[2*i+1]
		dst[i] = (a + b) * s
		dst[h+i] = (a - b) * s
	}
}

func unstep[F Float](dst, src []F) {
	if d, ok := any(dst).([]float64); ok {
		unstep64(d, any(src).([]float64))
		return
	}

	h := len(src) / 2
	s := F(invSqrt2)
	for i := range h {
		t, f := src[i], src[h+i]
		dst[2*i] = (t + f) * s
		dst[2*i+1] = (t - f) * s
	}
}

func step64(dst, src []float64) {
	h := len(src) / 2
	trend := dst[:h]
	fluct := dst[h:]
	for i := range trend {
		a, b := src[2*i], src[2*i+1]
		trend[i] = a + b
		fluct[i] = a - b
	}
	vecmath.ScaleBlock(dst, dst, invSqrt2)
}

func unstep64(dst, src []float64) {
	h := len(src) / 2
	trend := src[:h]
	fluct := src[h:]
	for i := range trend {
		t, f := trend[i], fluct[i]
		dst[2*i] = t + f
		dst[2*i+1] = t - f
	}
	vecmath.ScaleBlock(dst, dst, invSqrt2)
}
