package signal

import "testing"

func TestGradientCorners(t *testing.T) {
	g, err := Gradient(4, 8)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	if g[0] != 0 || g[len(g)-1] != 1 {
		t.Fatalf("corners = %v, %v, want 0, 1", g[0], g[len(g)-1])
	}
	one, err := Gradient(1, 1)
	if err != nil || one[0] != 0 {
		t.Fatalf("Gradient(1, 1) = %v, %v", one, err)
	}
	if _, err := Gradient(0, 4); err == nil {
		t.Fatal("expected error for empty grid")
	}
}

func TestCheckerboard(t *testing.T) {
	g, err := Checkerboard(4, 4, 2)
	if err != nil {
		t.Fatalf("Checkerboard() error = %v", err)
	}
	want := []float64{
		1, 1, 0, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
		0, 0, 1, 1,
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("g[%d] = %v, want %v", i, g[i], want[i])
		}
	}
	if _, err := Checkerboard(4, 4, 0); err == nil {
		t.Fatal("expected error for zero cell size")
	}
}
