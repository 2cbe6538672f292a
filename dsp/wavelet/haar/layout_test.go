package haar

import (
	"errors"
	"testing"
)

func TestLayout(t *testing.T) {
	bands, err := Layout(8, 3)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	want := []Band{
		{Level: 3, Kind: BandTrend, View: View{Offset: 0, Len: 1}},
		{Level: 3, Kind: BandFluctuation, View: View{Offset: 1, Len: 1}},
		{Level: 2, Kind: BandFluctuation, View: View{Offset: 2, Len: 2}},
		{Level: 1, Kind: BandFluctuation, View: View{Offset: 4, Len: 4}},
	}
	if len(bands) != len(want) {
		t.Fatalf("len = %d, want %d", len(bands), len(want))
	}
	for i := range want {
		if bands[i] != want[i] {
			t.Fatalf("band %d = %+v, want %+v", i, bands[i], want[i])
		}
	}
}

func TestLayoutCoversBufferContiguously(t *testing.T) {
	for depth := 0; depth <= MaxDepth(64); depth++ {
		bands, err := Layout(64, depth)
		if err != nil {
			t.Fatalf("depth=%d: Layout() error = %v", depth, err)
		}
		next := 0
		for _, b := range bands {
			if b.Offset != next {
				t.Fatalf("depth=%d: band %+v starts at %d, want %d", depth, b, b.Offset, next)
			}
			next = b.End()
		}
		if next != 64 {
			t.Fatalf("depth=%d: bands end at %d, want 64", depth, next)
		}
	}
}

func TestLayoutRejectsBadArguments(t *testing.T) {
	if _, err := Layout(12, 1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("error = %v, want ErrInvalidLength", err)
	}
	if _, err := Layout(8, 4); !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("error = %v, want ErrDepthExceeded", err)
	}
}

func TestViewOf(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	v := View{Offset: 2, Len: 3}
	got := v.Of(buf)
	if len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Fatalf("Of() = %v", got)
	}
	if BandTrend.String() != "trend" || BandFluctuation.String() != "fluctuation" {
		t.Fatal("unexpected band kind names")
	}
}
