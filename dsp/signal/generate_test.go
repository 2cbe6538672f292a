package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestCyclesEndpoints(t *testing.T) {
	g := NewGenerator()
	s, err := g.Cycles(10, 1, 64)
	if err != nil {
		t.Fatalf("Cycles() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// The last sample lands on a whole number of periods.
	if math.Abs(s[63]) > 1e-12 {
		t.Fatalf("s[63] = %v, want ~0", s[63])
	}
	if _, err := g.Cycles(1, 1, 1); err == nil {
		t.Fatal("expected error for a single sample")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}

	a, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different noise")
	}
}

func TestImpulseAndEdge(t *testing.T) {
	g := NewGenerator()
	imp, err := g.Impulse(0.75, 8, 3)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	edge, err := g.Edge(2, 8, 3)
	if err != nil {
		t.Fatalf("Edge() error = %v", err)
	}
	for i := range 8 {
		wantImp, wantEdge := 0.0, 0.0
		if i == 3 {
			wantImp = 0.75
		}
		if i >= 3 {
			wantEdge = 2
		}
		if imp[i] != wantImp || edge[i] != wantEdge {
			t.Fatalf("index %d: impulse=%v edge=%v, want %v %v", i, imp[i], edge[i], wantImp, wantEdge)
		}
	}

	if _, err := g.Impulse(1, 8, 8); err == nil {
		t.Fatal("expected error for impulse outside the signal")
	}
	if _, err := g.Edge(1, 8, 9); err == nil {
		t.Fatal("expected error for edge outside the signal")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestNormalizeAtTargetKeepsSamples(t *testing.T) {
	in := []float64{0.1, -0.7, 0.3}
	out, err := Normalize(in, 0.7+1e-15)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v unchanged", i, out[i], in[i])
		}
	}
	out[0] = 9
	if in[0] != 0.1 {
		t.Fatal("Normalize returned the input slice")
	}
}

func TestNormalizeSilence(t *testing.T) {
	out, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("Normalize(silence) = %v, want zeros", out)
	}
}

func TestGeneratorLength(t *testing.T) {
	g := NewGenerator(core.WithSignalLength(256))
	if g.Length() != 256 {
		t.Fatalf("Length() = %d, want 256", g.Length())
	}
}
