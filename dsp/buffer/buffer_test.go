package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	if s[0] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestResizeGrowZeroesStaleData(t *testing.T) {
	b := New(4)
	copy(b.Samples(), []float64{1, 2, 3, 4})
	b.Resize(2)
	b.Resize(4)
	if b.Samples()[0] != 1 || b.Samples()[1] != 2 {
		t.Fatal("Resize did not preserve existing data")
	}
	if b.Samples()[2] != 0 || b.Samples()[3] != 0 {
		t.Fatal("Resize did not zero re-exposed elements")
	}
}

func TestResizeBeyondCapacityKeepsData(t *testing.T) {
	b := FromSlice([]float64{5, 6})
	b.Resize(8)
	if b.Len() != 8 || b.Cap() < 8 {
		t.Fatalf("Len() = %d, Cap() = %d, want 8", b.Len(), b.Cap())
	}
	want := []float64{5, 6, 0, 0, 0, 0, 0, 0}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("sample %d = %v, want %v", i, v, want[i])
		}
	}
	b.Resize(0)
	if b.Len() != 0 {
		t.Fatalf("Len() after shrink = %d, want 0", b.Len())
	}
}

func TestPairDisjoint(t *testing.T) {
	b := New(0)
	first, second := b.Pair(4)
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("lengths = %d, %d, want 4, 4", len(first), len(second))
	}
	if cap(first) != 4 {
		t.Fatalf("cap(first) = %d, want 4", cap(first))
	}
	for i := range first {
		first[i] = 1
	}
	for i, v := range second {
		if v != 0 {
			t.Fatalf("second[%d] = %v, want 0", i, v)
		}
	}
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := FromSlice([]float64{1, 2})
	c := b.Copy()
	c.Samples()[0] = 7
	if b.Samples()[0] != 1 {
		t.Fatal("Copy shares memory with the original")
	}
}
